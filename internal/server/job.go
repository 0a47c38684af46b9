package server

import (
	"context"
	"time"

	"civistash/internal/job"
	"civistash/pkg/log"

	"github.com/go-co-op/gocron"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type JobServer struct {
	log       *log.Logger
	conf      *viper.Viper
	scheduler *gocron.Scheduler

	taskReconcileJob job.TaskReconcileJob
}

func NewJobServer(
	log *log.Logger,
	conf *viper.Viper,
	taskReconcileJob job.TaskReconcileJob,
) *JobServer {
	return &JobServer{
		log:              log,
		conf:             conf,
		taskReconcileJob: taskReconcileJob,
	}
}

func (j *JobServer) Start(ctx context.Context) error {
	gocron.SetPanicHandler(func(jobName string, recoverData interface{}) {
		j.log.Error("Job Panic", zap.String("job", jobName), zap.Any("recover", recoverData))
	})

	j.scheduler = gocron.NewScheduler(time.UTC)

	interval := j.conf.GetInt("job.reconcileIntervalSeconds")
	if interval <= 0 {
		interval = 10
	}
	_, err := j.scheduler.Every(interval).Seconds().Do(func() {
		if err := j.taskReconcileJob.Reconcile(ctx); err != nil {
			j.log.Error("TaskReconcileJob error", zap.Error(err))
		}
	})
	if err != nil {
		j.log.Error("TaskReconcileJob schedule error", zap.Error(err))
		return err
	}

	j.scheduler.StartBlocking()
	return nil
}

func (j *JobServer) Stop(ctx context.Context) error {
	j.scheduler.Stop()
	j.log.Info("JobServer stop...")
	return nil
}
