package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"matching/pkg/logger"
)

// Task периодическая фоновая задача.
type Task interface {
	// TTL интервал между запусками.
	TTL() time.Duration

	Do(context.Context) error

	// Info имя задачи для логов.
	Info() string
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Worker управляет выполнением набора фоновых задач.
type Worker struct {
	log   handlerLogger
	tasks []Task
	wg    sync.WaitGroup
}

// New прогревает задачи и запускает их периодическое выполнение.
//
//  1. Каждая задача один раз выполняется синхронно (параллельно с остальными),
//     ошибка или паника любой из них возвращается из New.
//  2. После прогрева задачи крутятся в фоне по своему TTL до отмены ctx.
//  3. Wait блокирует до выхода всех фоновых циклов.
func New(ctx context.Context, log handlerLogger, tasks []Task) (*Worker, error) {
	worker := &Worker{
		log:   log,
		tasks: tasks,
	}
	if len(tasks) == 0 {
		return worker, nil
	}

	initGroup, initCtx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		initGroup.Go(func() error {
			log.Info("Initializing",
				logger.NewField("task", task.Info()),
			)
			return worker.runOnce(initCtx, task)
		})
	}

	if err := initGroup.Wait(); err != nil {
		return nil, fmt.Errorf("failed to initialize tasks: %w", err)
	}

	for _, task := range tasks {
		worker.wg.Add(1)
		go func() {
			defer worker.wg.Done()
			worker.runBackgroundTask(ctx, task)
		}()
	}

	return worker, nil
}

// Wait ждет остановки всех задач после отмены контекста, переданного в New.
func (w *Worker) Wait() {
	w.wg.Wait()
}

func (w *Worker) runBackgroundTask(ctx context.Context, task Task) {
	ttl := task.TTL()
	if ttl <= 0 {
		w.log.Warn("invalid TTL, skipping periodic execution",
			logger.NewField("task", task.Info()),
			logger.NewField("TTL", ttl),
		)
		return
	}
	w.log.Info("Starting periodic execution",
		logger.NewField("task", task.Info()),
		logger.NewField("TTL", ttl),
	)

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("Stopping task (context cancelled)",
				logger.NewField("task", task.Info()),
			)
			return
		case <-ticker.C:
			if err := w.runOnce(ctx, task); err != nil {
				w.log.Error("Background task failed",
					logger.NewField("task", task.Info()),
					logger.NewField("error", err),
				)
			}
		}
	}
}

// runOnce переводит панику задачи в ошибку
func (w *Worker) runOnce(ctx context.Context, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			err = fmt.Errorf("task %q panic: %v", task.Info(), r)
			w.log.Error("Background task panic",
				logger.NewField("task", task.Info()),
				logger.NewField("recover", r),
				logger.NewField("stack", string(stack)),
			)
		}
	}()

	start := time.Now()
	err = task.Do(ctx)
	TaskDuration.WithLabelValues(task.Info(), resultLabel(err)).Observe(time.Since(start).Seconds())
	return err
}

func resultLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
