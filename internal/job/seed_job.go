package job

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nomad-place-api/internal/domain"
	"nomad-place-api/internal/repository"
	"nomad-place-api/internal/service"
)

// SeedJob loads the cafe catalog from a JSON file into the database.
// It runs once at startup and then on a cron schedule so that catalog
// updates shipped with the deployment are picked up without manual work.
type SeedJob struct {
	cafeRepo    repository.CafeRepository
	cafeService service.CafeService
	filePath    string
	logger      *zap.Logger
}

// NewSeedJob creates a new SeedJob instance
func NewSeedJob(
	cafeRepo repository.CafeRepository,
	cafeService service.CafeService,
	filePath string,
	logger *zap.Logger,
) *SeedJob {
	return &SeedJob{
		cafeRepo:    cafeRepo,
		cafeService: cafeService,
		filePath:    filePath,
		logger:      logger,
	}
}

// seedEntry is one catalog record in the seed file. Coordinates arrive
// either as JSON numbers or as numeric strings depending on the export tool.
type seedEntry struct {
	Name          string    `json:"name"`
	Branch        *string   `json:"branch"`
	Address       *string   `json:"address"`
	Latitude      flexFloat `json:"latitude"`
	Longitude     flexFloat `json:"longitude"`
	OpeningHours  *string   `json:"opening_hours"`
	IsConcentrate bool      `json:"isConcentrate"`
	PhotoURL      *string   `json:"photo_url"`
}

// flexFloat accepts both 37.5 and "37.5"
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	raw = strings.Trim(raw, `"`)
	if raw == "" || raw == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid coordinate value %q: %w", raw, err)
	}
	*f = flexFloat(v)
	return nil
}

// Run executes the seed job
func (j *SeedJob) Run() {
	ctx := context.Background()

	j.logger.Info("Starting cafe catalog seed job",
		zap.String("file", j.filePath),
	)

	entries, err := j.loadEntries()
	if err != nil {
		j.logger.Error("Failed to load seed file", zap.Error(err))
		return
	}

	successCount := 0
	failCount := 0

	for _, entry := range entries {
		if entry.Name == "" {
			j.logger.Warn("Skipping seed entry without a name")
			failCount++
			continue
		}

		cafe := &domain.Cafe{
			BaseModel:     domain.BaseModel{ID: uuid.New()},
			Name:          entry.Name,
			Branch:        entry.Branch,
			Address:       entry.Address,
			Latitude:      float64(entry.Latitude),
			Longitude:     float64(entry.Longitude),
			OpeningHours:  entry.OpeningHours,
			IsConcentrate: entry.IsConcentrate,
			PhotoURL:      entry.PhotoURL,
		}

		if err := j.cafeRepo.UpsertByName(ctx, cafe); err != nil {
			j.logger.Error("Failed to upsert cafe",
				zap.String("name", entry.Name),
				zap.Error(err),
			)
			failCount++
			continue
		}
		successCount++
	}

	// 시드 반영 후 캐시된 카탈로그 무효화
	if j.cafeService != nil {
		j.cafeService.InvalidateCatalogCache(ctx)
	}

	j.logger.Info("Cafe catalog seed job completed",
		zap.Int("total", len(entries)),
		zap.Int("success", successCount),
		zap.Int("failed", failCount),
	)
}

func (j *SeedJob) loadEntries() ([]seedEntry, error) {
	data, err := os.ReadFile(j.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var entries []seedEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return entries, nil
}
