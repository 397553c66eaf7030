package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/ayubkhn/contact-mailer/internal/mocks/scheduler"
)

func TestScheduler_Run_ScansImmediatelyAndOnTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pipelineMock := mocks.NewMockpromoter(ctrl)
	s := New(pipelineMock, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	// One scan on start plus at least one per tick.
	pipelineMock.EXPECT().PromoteDueJobs(gomock.Any(), strategy).Return(nil).MinTimes(2)

	go s.Run(ctx, strategy)

	time.Sleep(70 * time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)
}

func TestScheduler_Run_KeepsPollingAfterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pipelineMock := mocks.NewMockpromoter(ctrl)
	s := New(pipelineMock, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	pipelineMock.EXPECT().PromoteDueJobs(gomock.Any(), strategy).Return(errors.New("db down")).MinTimes(2)

	go s.Run(ctx, strategy)

	time.Sleep(70 * time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)
}

func TestScheduler_Run_StopsOnContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pipelineMock := mocks.NewMockpromoter(ctrl)
	s := New(pipelineMock, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	// Only the immediate scan runs; the first tick is an hour away.
	pipelineMock.EXPECT().PromoteDueJobs(gomock.Any(), strategy).Return(nil)

	done := make(chan struct{})
	go func() {
		s.Run(ctx, strategy)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after context cancel")
	}
}
