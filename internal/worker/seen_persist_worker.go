package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/a-epstein/microblog/internal/model"
	"github.com/a-epstein/microblog/internal/repository"
)

// SeenPersistWorker drains the seen-event queue and applies last-seen
// touches to the users table, keeping the write off the request path.
type SeenPersistWorker struct {
	conn      *amqp.Connection
	repo      *repository.UserRepository
	queueName string

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSeenPersistWorker(conn *amqp.Connection, repo *repository.UserRepository, queueName string) *SeenPersistWorker {
	return &SeenPersistWorker{
		conn:      conn,
		repo:      repo,
		queueName: queueName,
	}
}

func (w *SeenPersistWorker) Start(ctx context.Context) error {
	if w.cancel != nil {
		return nil
	}

	workerCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	ch, err := w.conn.Channel()
	if err != nil {
		cancel()
		return fmt.Errorf("open worker channel failed: %w", err)
	}

	_, err = ch.QueueDeclare(
		w.queueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("declare worker queue failed: %w", err)
	}

	deliveries, err := ch.Consume(
		w.queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("consume queue failed: %w", err)
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer ch.Close()

		for {
			select {
			case <-workerCtx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}

				var event model.SeenEvent
				if err := json.Unmarshal(d.Body, &event); err != nil {
					log.Printf("worker decode seen event failed: %v", err)
					_ = d.Nack(false, false)
					continue
				}

				if err := w.repo.TouchLastSeen(event.UserID, event.SeenAt); err != nil {
					log.Printf("worker persist last seen failed: %v", err)
					_ = d.Nack(false, false)
					continue
				}

				_ = d.Ack(false)
			}
		}
	}()

	return nil
}

func (w *SeenPersistWorker) Close() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}
