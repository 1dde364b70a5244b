package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/vault"
)

type clientCacheJob struct {
	vaultService ClientVaultService
	logger       *logger.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	mailbox chan *vault.Vault
	wg      sync.WaitGroup
}

// NewClientCacheJob creates a clientCacheJob that saves vaults through
// vaultService. The job is idle until Start is called.
func NewClientCacheJob(vaultService ClientVaultService, logger *logger.Logger) ClientCacheJob {
	return &clientCacheJob{vaultService: vaultService, logger: logger}
}

// Start implements ClientCacheJob. It stops any previously running job, then
// launches a background goroutine that saves every vault handed to Enqueue.
// The goroutine exits when ctx is cancelled or Stop is called, after saving
// the vault still pending at that moment.
func (j *clientCacheJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	mailbox := make(chan *vault.Vault, 1)
	j.cancel = cancel
	j.mailbox = mailbox
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()

		for {
			select {
			case <-jobCtx.Done():
				select {
				case v := <-mailbox:
					j.save(jobCtx, v)
				default:
				}
				return
			case v := <-mailbox:
				j.save(jobCtx, v)
			}
		}
	}()
}

// save writes v even when ctx is already cancelled: a vault accepted by
// Enqueue is always persisted before Stop returns.
func (j *clientCacheJob) save(ctx context.Context, v *vault.Vault) {
	// SaveVault logs the failure itself
	_ = j.vaultService.SaveVault(context.WithoutCancel(ctx), v)
}

// Enqueue implements ClientCacheJob. It never blocks: a vault still waiting
// to be saved is replaced by v. Vaults enqueued while the job is not running
// are dropped.
func (j *clientCacheJob) Enqueue(v *vault.Vault) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.mailbox == nil {
		j.logger.Warn().Msg("cache job is not running, vault not saved")
		return
	}

	select {
	case j.mailbox <- v:
		return
	default:
	}

	// replace the stale pending vault; the worker may have taken it already
	select {
	case <-j.mailbox:
	default:
	}
	j.mailbox <- v
}

// Stop implements ClientCacheJob. Safe to call when the job is not running.
func (j *clientCacheJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mailbox = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
