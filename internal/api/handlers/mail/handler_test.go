package mail

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ayubkhn/contact-mailer/internal/api/dto"
	"github.com/ayubkhn/contact-mailer/internal/config"
	mocks "github.com/ayubkhn/contact-mailer/internal/mocks/api/handlers/mail"
	"github.com/ayubkhn/contact-mailer/internal/model"
	"github.com/ayubkhn/contact-mailer/internal/repository/emaillog"
	"github.com/ayubkhn/contact-mailer/internal/repository/schedule"
	"github.com/ayubkhn/contact-mailer/internal/service/delivery"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockmailService, *config.Config) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockmailService(ctrl)
	cfg := &config.Config{
		Mail: config.Mail{DailyLimit: 2000, MaxAttachments: 3, MaxAttachSize: 1024},
	}
	validate := validator.New()
	handler := NewHandler(mockService, validate, cfg)
	return handler, mockService, cfg
}

func TestHandler_Send_JSON(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	reqBody := dto.SendRequest{
		Subject:    "Hello",
		Body:       "<b>hi</b>",
		Recipients: []string{"a@example.com"},
	}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/emails/send", bytes.NewReader(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		Submit(gomock.Any(), cfg.Retry, gomock.AssignableToTypeOf(delivery.SendRequest{})).
		Return(delivery.SubmitResult{Sent: 1}, nil)

	handler.Send(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Send_Multipart(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	data, _ := json.Marshal(dto.SendRequest{
		Subject:    "Hello",
		Body:       "body",
		Recipients: []string{"a@example.com"},
	})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("data", string(data))
	fw, _ := mw.CreateFormFile("attachments", "report.txt")
	_, _ = fw.Write([]byte("attached content"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/emails/send", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		Submit(gomock.Any(), cfg.Retry, gomock.AssignableToTypeOf(delivery.SendRequest{})).
		DoAndReturn(func(_ interface{}, _ interface{}, req delivery.SendRequest) (delivery.SubmitResult, error) {
			if assert.Len(t, req.Attachments, 1) {
				assert.Equal(t, "report.txt", req.Attachments[0].Filename)
				assert.Equal(t, []byte("attached content"), req.Attachments[0].Content)
			}
			return delivery.SubmitResult{Sent: 1}, nil
		})

	handler.Send(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Send_AttachmentTooLarge(t *testing.T) {
	handler, _, cfg := setupHandler(t)
	cfg.Mail.MaxAttachSize = 4

	data, _ := json.Marshal(dto.SendRequest{
		Subject:    "Hello",
		Body:       "body",
		Recipients: []string{"a@example.com"},
	})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("data", string(data))
	fw, _ := mw.CreateFormFile("attachments", "big.bin")
	_, _ = fw.Write([]byte("more than four bytes"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/emails/send", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Send(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Send_InvalidBody(t *testing.T) {
	handler, _, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/emails/send", bytes.NewReader([]byte(`{"subject":"x"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Send(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Send_InvalidScheduledAt(t *testing.T) {
	handler, _, _ := setupHandler(t)

	reqBody := dto.SendRequest{
		Subject:     "Hello",
		Body:        "body",
		Recipients:  []string{"a@example.com"},
		ScheduledAt: "tomorrow",
	}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/emails/send", bytes.NewReader(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Send(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_History(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/emails/history", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		History(gomock.Any()).
		Return([]model.EmailLog{{Subject: "s"}}, nil)

	handler.History(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Scheduled(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/emails/scheduled", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		ScheduledEmails(gomock.Any()).
		Return([]model.ScheduledJob{{Subject: "s"}}, nil)

	handler.Scheduled(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Cancel(t *testing.T) {
	handler, mockService, _ := setupHandler(t)
	id := uuid.New()

	req := httptest.NewRequest(http.MethodDelete, "/emails/scheduled/"+id.String(), nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().Cancel(gomock.Any(), id).Return(nil)

	handler.Cancel(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Cancel_NotFound(t *testing.T) {
	handler, mockService, _ := setupHandler(t)
	id := uuid.New()

	req := httptest.NewRequest(http.MethodDelete, "/emails/scheduled/"+id.String(), nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().Cancel(gomock.Any(), id).Return(schedule.ErrJobNotFound)

	handler.Cancel(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestHandler_Cancel_InvalidID(t *testing.T) {
	handler, _, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodDelete, "/emails/scheduled/not-a-uuid", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	handler.Cancel(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_RecordStatus(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)
	id := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/emails/deliveries/"+id.String()+"/status", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().
		RecordStatus(gomock.Any(), cfg.Retry, id).
		Return(model.DeliverySent, nil)

	handler.RecordStatus(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_RecordStatus_NotFound(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)
	id := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/emails/deliveries/"+id.String()+"/status", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().
		RecordStatus(gomock.Any(), cfg.Retry, id).
		Return(model.DeliveryStatus(""), emaillog.ErrDeliveryRecordNotFound)

	handler.RecordStatus(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestHandler_OverrideStatus(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)
	id := uuid.New()

	body, _ := json.Marshal(dto.OverrideStatusRequest{Status: "failed", ErrorMessage: "bounced"})
	req := httptest.NewRequest(http.MethodPut, "/emails/deliveries/"+id.String()+"/status", bytes.NewReader(body))
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().
		OverrideRecordStatus(gomock.Any(), cfg.Retry, id, "bounced").
		Return(nil)

	handler.OverrideStatus(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_OverrideStatus_RejectsNonFailed(t *testing.T) {
	handler, _, _ := setupHandler(t)
	id := uuid.New()

	body, _ := json.Marshal(dto.OverrideStatusRequest{Status: "delivered"})
	req := httptest.NewRequest(http.MethodPut, "/emails/deliveries/"+id.String()+"/status", bytes.NewReader(body))
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	handler.OverrideStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_DeliveryDetail(t *testing.T) {
	handler, mockService, _ := setupHandler(t)
	id := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/emails/"+id.String()+"/deliveries", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().
		DeliveryDetail(gomock.Any(), id).
		Return([]model.DeliveryDetail{}, nil)

	handler.DeliveryDetail(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_DeliveryStats(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/emails/deliveries/stats", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		DeliveryStats(gomock.Any()).
		Return([]model.StatusCount{{Status: "sent", Count: 3}}, nil)

	handler.DeliveryStats(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Usage(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/emails/limit", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		Usage(gomock.Any()).
		Return(delivery.DailyUsage{Sent: 10, Limit: 2000, Remaining: 1990}, nil)

	handler.Usage(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Track(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)
	id := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/track/"+id.String(), nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().TrackOpen(gomock.Any(), cfg.Retry, id).Return(nil)

	handler.Track(c)

	res := w.Result()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "image/gif", res.Header.Get("Content-Type"))
	assert.Equal(t, "no-cache, no-store, must-revalidate", res.Header.Get("Cache-Control"))
	assert.Equal(t, trackingPixel, w.Body.Bytes())
}

func TestHandler_Track_InvalidIDStillServesPixel(t *testing.T) {
	handler, _, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/track/not-a-uuid", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	handler.Track(c)

	res := w.Result()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "image/gif", res.Header.Get("Content-Type"))
	assert.Equal(t, trackingPixel, w.Body.Bytes())
}
