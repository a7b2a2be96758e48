package job

import (
	"context"

	"go.uber.org/zap"

	"video-share-api/internal/metrics"
	"video-share-api/internal/repository"
)

const orphanBatchSize = 500

// OrphanSweepJob removes replies whose parent comment no longer exists.
// A cascade delete normally takes the whole subtree in one transaction,
// so orphans only appear after out-of-band row removal. The sweep keeps
// listing queries from silently dropping broken branches.
type OrphanSweepJob struct {
	commentRepo repository.CommentRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewOrphanSweepJob creates a new OrphanSweepJob instance
func NewOrphanSweepJob(
	commentRepo repository.CommentRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) *OrphanSweepJob {
	return &OrphanSweepJob{
		commentRepo: commentRepo,
		metrics:     m,
		logger:      logger,
	}
}

// Run executes the sweep. Deleting an orphan can orphan its own
// children, so the job loops until a pass finds nothing.
func (j *OrphanSweepJob) Run() {
	ctx := context.Background()

	j.logger.Info("Starting orphan comment sweep")

	var totalSwept int64
	for {
		orphanIDs, err := j.commentRepo.FindOrphanIDs(ctx, orphanBatchSize)
		if err != nil {
			j.logger.Error("Failed to find orphaned comments", zap.Error(err))
			return
		}

		if len(orphanIDs) == 0 {
			break
		}

		deleted, err := j.commentRepo.DeleteBatch(ctx, orphanIDs)
		if err != nil {
			j.logger.Error("Failed to delete orphaned comments",
				zap.Int("count", len(orphanIDs)),
				zap.Error(err),
			)
			return
		}

		totalSwept += deleted
		j.logger.Debug("Deleted orphaned comment batch",
			zap.Int64("deleted", deleted),
		)
	}

	if totalSwept > 0 && j.metrics != nil {
		j.metrics.AddOrphansSwept(totalSwept)
	}

	if totalSwept == 0 {
		j.logger.Info("No orphaned comments found")
		return
	}

	j.logger.Info("Orphan comment sweep completed",
		zap.Int64("total_swept", totalSwept),
	)
}
