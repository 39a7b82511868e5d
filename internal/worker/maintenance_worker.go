package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vilohq/vilo-api/internal/config"
	"github.com/vilohq/vilo-api/internal/domain"
	"github.com/vilohq/vilo-api/internal/repository"
	"github.com/vilohq/vilo-api/pkg/logger"
)

const (
	trialPeriod      = 14 * 24 * time.Hour
	invoiceRetention = 90 * 24 * time.Hour
	archiveBatchSize = 100
)

// MaintenanceWorker runs the scheduled housekeeping jobs: expired customer
// session cleanup, subscription-trial expiry, and archival of old paid
// invoices to S3. Jobs run independently; one failing run never blocks the
// next tick or the other jobs.
type MaintenanceWorker struct {
	repository   repository.PostgresRepository
	logger       *logger.Logger
	interval     time.Duration
	shutdownChan chan struct{}
	waitGroup    sync.WaitGroup
	s3Client     *s3.Client
	s3Config     *config.S3Config
}

func NewMaintenanceWorker(
	repository repository.PostgresRepository,
	logger *logger.Logger,
	interval time.Duration,
	s3Client *s3.Client,
	s3Config *config.S3Config,
) *MaintenanceWorker {
	return &MaintenanceWorker{
		repository:   repository,
		logger:       logger,
		interval:     interval,
		shutdownChan: make(chan struct{}),
		s3Client:     s3Client,
		s3Config:     s3Config,
	}
}

func (w *MaintenanceWorker) Start() {
	w.logger.Info("Starting Maintenance worker...")
	w.waitGroup.Add(1)
	go w.run()
}

func (w *MaintenanceWorker) Stop() {
	w.logger.Info("Stopping Maintenance worker...")
	close(w.shutdownChan)
	w.waitGroup.Wait()
	w.logger.Info("Maintenance worker stopped")
}

func (w *MaintenanceWorker) run() {
	defer w.waitGroup.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.shutdownChan:
			w.logger.Info("Maintenance worker shutting down")
			return
		case <-ticker.C:
			ctx := context.Background()
			if err := w.cleanupSessions(ctx); err != nil {
				w.logger.Errorf("Session cleanup failed: %v", err)
			}
			if err := w.expireTrials(ctx); err != nil {
				w.logger.Errorf("Trial expiry check failed: %v", err)
			}
			if err := w.archiveInvoices(ctx); err != nil {
				w.logger.Errorf("Invoice archival failed: %v", err)
			}
		}
	}
}

// cleanupSessions blanks customer-portal session tokens past their expiry.
func (w *MaintenanceWorker) cleanupSessions(ctx context.Context) error {
	cleared, err := w.repository.Customer().ClearExpiredSessions(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("failed to clear expired sessions: %w", err)
	}
	if cleared > 0 {
		w.logger.Infof("Cleared %d expired customer sessions", cleared)
	}
	return nil
}

// expireTrials moves trial tenants past the trial period to past_due.
func (w *MaintenanceWorker) expireTrials(ctx context.Context) error {
	tenants, err := w.repository.Tenant().List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list tenants: %w", err)
	}

	cutoff := time.Now().Add(-trialPeriod)
	for i := range tenants {
		tenant := &tenants[i]
		if tenant.SubscriptionStatus != domain.SubscriptionTrial || tenant.CreatedAt.After(cutoff) {
			continue
		}
		tenant.SubscriptionStatus = domain.SubscriptionPastDue
		if err := w.repository.Tenant().Update(ctx, tenant); err != nil {
			w.logger.Errorf("Failed to expire trial for tenant %s: %v", tenant.ID, err)
			continue
		}
		w.logger.Infof("Tenant %s trial expired, subscription now past_due", tenant.ID)
	}
	return nil
}

// archiveInvoices uploads paid invoices past the retention window to S3 and
// marks them archived.
func (w *MaintenanceWorker) archiveInvoices(ctx context.Context) error {
	issuedBefore := time.Now().Add(-invoiceRetention)
	invoices, err := w.repository.Invoice().ListArchivable(ctx, issuedBefore, archiveBatchSize)
	if err != nil {
		return fmt.Errorf("failed to list archivable invoices: %w", err)
	}
	if len(invoices) == 0 {
		return nil
	}

	w.logger.Infof("Archiving %d invoices issued before %s", len(invoices), issuedBefore.Format(time.RFC3339))

	for i := range invoices {
		invoice := &invoices[i]
		if err := w.uploadInvoice(ctx, invoice); err != nil {
			w.logger.Errorf("Failed to archive invoice %s: %v", invoice.ID, err)
			continue
		}
		archivedAt := time.Now()
		if err := w.repository.Invoice().MarkArchived(ctx, invoice.ID, archivedAt); err != nil {
			w.logger.Errorf("Failed to mark invoice %s archived: %v", invoice.ID, err)
		}
	}
	return nil
}

func (w *MaintenanceWorker) uploadInvoice(ctx context.Context, invoice *domain.Invoice) error {
	s3Key := fmt.Sprintf("invoices/%s/%s_%s.json",
		invoice.TenantID,
		invoice.Number,
		invoice.IssuedAt.Format("2006-01-02"))

	jsonData, err := json.MarshalIndent(invoice, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal invoice: %w", err)
	}

	contentType := "application/json"
	_, err = w.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &w.s3Config.BucketName,
		Key:         &s3Key,
		Body:        bytes.NewReader(jsonData),
		ContentType: &contentType,
		Metadata: map[string]string{
			"tenant-id":   invoice.TenantID,
			"booking-id":  invoice.BookingID,
			"archived-at": time.Now().Format(time.RFC3339),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to upload invoice to S3: %w", err)
	}

	w.logger.Infof("Uploaded invoice archive to s3://%s/%s", w.s3Config.BucketName, s3Key)
	return nil
}
