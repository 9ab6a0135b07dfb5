package sequence

import (
	"context"
	"medibook-service/internal/app/contracts"
	"strconv"
	"sync"

	"go.uber.org/zap"
)

var (
	sequenceServiceInstance contracts.SequenceService
	onceSequenceService     sync.Once
)

type sequenceService struct {
	redisRepo contracts.RedisRepository
	Log       *zap.Logger
}

// NewSequenceService builds the Redis-backed counter behind human booking
// ids. INCR makes Next race-free across concurrent settlements, unlike the
// read-latest-then-increment approach it replaces.
func NewSequenceService(repo contracts.RedisRepository, logger *zap.Logger) contracts.SequenceService {
	onceSequenceService.Do(func() {
		instance := &sequenceService{
			redisRepo: repo,
			Log:       logger,
		}
		sequenceServiceInstance = instance
	})
	return sequenceServiceInstance
}

func (s *sequenceService) Next(ctx context.Context, name string) (int64, error) {
	return s.redisRepo.Increment(ctx, name)
}

// EnsureAtLeast seeds the counter from pre-existing data at startup. Only
// called once before the server accepts traffic, so the read-compare-set is
// not racing anything.
func (s *sequenceService) EnsureAtLeast(ctx context.Context, name string, floor int64) error {
	current, err := s.redisRepo.Get(ctx, name)
	if err != nil {
		return err
	}

	var value int64
	if current != "" {
		value, _ = strconv.ParseInt(current, 10, 64)
	}
	if value >= floor {
		return nil
	}
	return s.redisRepo.Set(ctx, name, floor, 0)
}
