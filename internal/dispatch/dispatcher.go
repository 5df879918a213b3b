// internal/dispatch/dispatcher.go
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
)

type Job func(ctx context.Context)

// Dispatcher выполняет задачи одного пользователя строго по очереди,
// а задачи разных пользователей — параллельно.
// На каждого пользователя с непустой очередью работает одна горутина; пустые очереди удаляются.
type Dispatcher struct {
	ctx    context.Context
	mu     sync.Mutex
	queues map[int64][]Job
	wg     sync.WaitGroup
}

// New создаёт диспетчер. Задачи получают ctx без отмены: после остановки
// приёма updates уже поставленные задачи дорабатывают с рабочим контекстом.
func New(ctx context.Context) *Dispatcher {
	return &Dispatcher{
		ctx:    context.WithoutCancel(ctx),
		queues: make(map[int64][]Job),
	}
}

func (d *Dispatcher) Submit(userID int64, job Job) {
	d.mu.Lock()
	defer d.mu.Unlock()

	q, running := d.queues[userID]
	d.queues[userID] = append(q, job)
	if !running {
		d.wg.Add(1)
		go d.run(userID)
	}
}

// Wait блокируется, пока все поставленные задачи не выполнятся.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// WaitContext ждёт выполнения задач не дольше, чем живёт ctx.
func (d *Dispatcher) WaitContext(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("drain queues: %w", ctx.Err())
	}
}

// Active — число пользователей, у которых есть незавершённые задачи.
func (d *Dispatcher) Active() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.queues)
}

func (d *Dispatcher) run(userID int64) {
	defer d.wg.Done()
	for {
		d.mu.Lock()
		q := d.queues[userID]
		if len(q) == 0 {
			delete(d.queues, userID)
			d.mu.Unlock()
			return
		}
		job := q[0]
		q[0] = nil
		d.queues[userID] = q[1:]
		d.mu.Unlock()

		d.exec(userID, job)
	}
}

func (d *Dispatcher) exec(userID int64, job Job) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Job panicked", "user_id", userID, "panic", r, "stack", string(debug.Stack()))
		}
	}()
	job(d.ctx)
}
