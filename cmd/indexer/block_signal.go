package main

import (
	"context"
	"fmt"

	rpchttp "github.com/cometbft/cometbft/rpc/client/http"
	cmttypes "github.com/cometbft/cometbft/types"
	"go.uber.org/zap"
)

const blockSubscriber = "nyks-indexer"

// startBlockSignal subscribes to NewBlock events over the CometBFT websocket.
// An empty addr disables the signal and the ingester falls back to sleeping.
func startBlockSignal(ctx context.Context, addr string, logger *zap.Logger) (<-chan struct{}, error) {
	if addr == "" {
		return nil, nil
	}

	client, err := rpchttp.New(addr, "/websocket")
	if err != nil {
		return nil, fmt.Errorf("connect comet rpc: %w", err)
	}
	if err := client.Start(); err != nil {
		return nil, fmt.Errorf("start comet rpc: %w", err)
	}
	events, err := client.Subscribe(ctx, blockSubscriber, cmttypes.EventQueryNewBlock.String(), 1)
	if err != nil {
		_ = client.Stop()
		return nil, fmt.Errorf("subscribe new blocks: %w", err)
	}

	notify := make(chan struct{}, 1)

	go func() {
		defer func() {
			if err := client.Stop(); err != nil {
				logger.Warn("stop comet rpc failed", zap.Error(err))
			}
		}()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-events:
				if !ok {
					logger.Warn("new block subscription closed")
					return
				}
				if data, isBlock := ev.Data.(cmttypes.EventDataNewBlock); isBlock && data.Block != nil {
					logger.Debug("new block", zap.Int64("height", data.Block.Height))
				}
				select {
				case notify <- struct{}{}:
				default:
				}
			}
		}
	}()

	return notify, nil
}
