package cards

import (
	"context"
	"sync"

	interf "github.com/glkeru/loyalty/cards/internal/interfaces"
	"go.uber.org/zap"
)

// Consume reads messages until ctx is cancelled or the reader fails, running handle
// for at most s.workers messages at a time. It waits for running handlers before returning.
func (s *CardsService) Consume(ctx context.Context, reader interf.MessageReader, service string, handle func(ctx context.Context, msg string) error) error {
	wg := &sync.WaitGroup{}
	defer wg.Wait()
	semaphore := make(chan struct{}, s.workers)

	for {
		msg, err := reader.GetNewMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			s.Log(service, err)
			return err
		}

		select {
		case semaphore <- struct{}{}:
		case <-ctx.Done():
			return nil
		}
		wg.Add(1)
		go func(msg string) {
			defer wg.Done()
			defer func() { <-semaphore }()
			err := handle(ctx, msg)
			if err != nil {
				s.logger.Warn("message rejected",
					zap.String("service", service),
					zap.String("message", msg),
					zap.Error(err),
				)
			}
		}(msg)
	}
}

// RedeemAndConfirm returns a handler for redemption requests that reports every outcome
// with a known request id back to the requester.
func (s *CardsService) RedeemAndConfirm(confirm interf.RedemptionConfirmer) func(ctx context.Context, msg string) error {
	return func(ctx context.Context, msg string) error {
		requestID, err := s.Redeem(ctx, msg)
		if requestID == "" {
			return err
		}
		cerr := confirm.Processed(ctx, requestID, err == nil)
		if cerr != nil {
			s.Log("RedeemAndConfirm", cerr, zap.String("request", requestID))
		}
		return err
	}
}
