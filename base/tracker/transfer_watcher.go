package tracker

import (
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/otc-market/base/ctx"
	"github.com/x-xyz/otc-market/base/log"
	"github.com/x-xyz/otc-market/base/metrics"
	"github.com/x-xyz/otc-market/domain"
	"github.com/x-xyz/otc-market/service/chain"
)

type EventHandler interface {
	GetFilterTopics() [][]common.Hash
	ProcessEvents(bCtx.Ctx, []types.Log) error
}

const TooManyLogsTimeout = 30 * time.Second

const (
	defaultPollInterval  = 15 * time.Second
	defaultMaxBlockRange = 2000
)

type TransferWatcherCfg struct {
	ChainId      int32
	ChainService chain.Client
	Collections  []domain.Address
	EventHandl   EventHandler
	PollInterval time.Duration
	// FollowDistance blocks behind head are considered final
	FollowDistance uint64
	MaxBlockRange  uint64
	// StartBlock 0 starts from the current head
	StartBlock uint64
}

// TransferWatcher polls eth_getLogs for the watched collections and hands decoded logs to its handler
type TransferWatcher struct {
	chainId        int32
	chainService   chain.Client
	eventHandler   EventHandler
	filter         ethereum.FilterQuery
	pollInterval   time.Duration
	followDistance uint64
	maxBlockRange  uint64
	next           uint64
	met            metrics.Service
	stoppedCh      chan interface{}
}

func NewTransferWatcher(cfg *TransferWatcherCfg) (*TransferWatcher, error) {
	if len(cfg.Collections) == 0 {
		return nil, errors.New("config error: no collection to watch")
	}
	addrs := make([]common.Address, len(cfg.Collections))
	for i, c := range cfg.Collections {
		if !c.IsValid() {
			return nil, xerrors.Errorf("config error: collection %q: %w", c, domain.ErrInvalidAddress)
		}
		addrs[i] = c.ToCommon()
	}
	w := &TransferWatcher{
		chainId:      cfg.ChainId,
		chainService: cfg.ChainService,
		eventHandler: cfg.EventHandl,
		filter: ethereum.FilterQuery{
			Addresses: addrs,
			Topics:    cfg.EventHandl.GetFilterTopics(),
		},
		pollInterval:   cfg.PollInterval,
		followDistance: cfg.FollowDistance,
		maxBlockRange:  cfg.MaxBlockRange,
		next:           cfg.StartBlock,
		met:            metrics.New("watcher"),
		stoppedCh:      make(chan interface{}),
	}
	if w.pollInterval <= 0 {
		w.pollInterval = defaultPollInterval
	}
	if w.maxBlockRange == 0 {
		w.maxBlockRange = defaultMaxBlockRange
	}
	return w, nil
}

func (w *TransferWatcher) Start(ctx bCtx.Ctx) {
	go func() {
		defer close(w.stoppedCh)
		w.loop(ctx)
	}()
}

func (w *TransferWatcher) Wait() {
	<-w.stoppedCh
}

func (w *TransferWatcher) loop(ctx bCtx.Ctx) {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()
	for {
		if err := w.Poll(ctx); err != nil {
			// the range is retried on the next tick
			ctx.WithFields(log.Fields{
				"err":     err,
				"chainId": w.chainId,
				"next":    w.next,
			}).Warn("w.Poll failed")
			w.met.BumpSum("poll.err", 1)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Poll processes the blocks between the last processed one and head - followDistance.
// It must not be called concurrently.
func (w *TransferWatcher) Poll(ctx bCtx.Ctx) error {
	current, err := w.chainService.BlockNumber(ctx, w.chainId)
	if err != nil {
		ctx.WithField("err", err).Error("chainService.BlockNumber failed")
		return err
	}
	w.met.BumpAvg("blockchain.lastBlock", float64(current), "chainId", fmt.Sprint(w.chainId))
	if current < w.followDistance {
		return nil
	}
	target := current - w.followDistance
	if w.next == 0 {
		w.next = target + 1
		ctx.WithFields(log.Fields{
			"chainId": w.chainId,
			"start":   w.next,
		}).Info("watcher started")
		return nil
	}

	if w.next > target {
		return nil
	}
	for _, r := range newBlockRange(w.next, target).chunks(w.maxBlockRange) {
		if err := w.processBlkRange(ctx, r); err != nil {
			return err
		}
		w.next = r.end + 1
		w.met.BumpAvg("lastBlock", float64(r.end), "chainId", fmt.Sprint(w.chainId))
	}
	return nil
}

// Next is the first block not processed yet
func (w *TransferWatcher) Next() uint64 {
	return w.next
}

func (w *TransferWatcher) processBlkRange(ctx bCtx.Ctx, blkRange *blockRange) error {
	ranges := []*blockRange{blkRange}
	for len(ranges) > 0 {
		idx := len(ranges) - 1
		r := ranges[idx]
		ranges = ranges[:idx]
		filter := w.filter
		filter.FromBlock = r.from()
		filter.ToBlock = r.to()
		tCtx, cancel := bCtx.WithTimeout(ctx, TooManyLogsTimeout)
		logs, err := w.chainService.FilterLogs(tCtx, w.chainId, filter)
		cancel()
		if err != nil {
			if r.isSingle() {
				ctx.WithFields(log.Fields{
					"err":     err,
					"begin":   r.begin,
					"end":     r.end,
					"chainId": w.chainId,
				}).Error("failed to get logs within one block")
				return err
			}
			r1, r2 := r.split()
			ranges = append(ranges, r2, r1)
			ctx.WithFields(log.Fields{
				"chainId":       w.chainId,
				"originalRange": r.String(),
				"range1":        r1.String(),
				"range2":        r2.String(),
			}).Info("splitting blockRange")
			continue
		}
		ctx.WithFields(log.Fields{
			"chainId":    w.chainId,
			"beginBlock": r.begin,
			"endBlock":   r.end,
			"#logs":      len(logs),
		}).Debug(fmt.Sprintf("recieved #%d logs", len(logs)))

		if len(logs) == 0 {
			continue
		}
		w.met.BumpSum("transfer", float64(len(logs)))
		if err := w.eventHandler.ProcessEvents(ctx, logs); err != nil {
			return xerrors.Errorf("failed to process events: %w", err)
		}
	}
	return nil
}
