// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package feeds

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/l3montree-dev/threatintel/database"
	"github.com/l3montree-dev/threatintel/database/models"
	"github.com/l3montree-dev/threatintel/dtos"
	"github.com/l3montree-dev/threatintel/monitoring"
	"github.com/l3montree-dev/threatintel/shared"
	"github.com/l3montree-dev/threatintel/utils"
	"golang.org/x/sync/singleflight"
)

type feedService struct {
	feeds            []shared.Feed
	threatRepository shared.ThreatRepository
	timeout          time.Duration

	// concurrent triggers of the same source share one run
	inflight singleflight.Group
}

var _ shared.FeedService = (*feedService)(nil)

func NewFeedService(feeds []shared.Feed, threatRepository shared.ThreatRepository, timeout time.Duration) *feedService {
	return &feedService{
		feeds:            feeds,
		threatRepository: threatRepository,
		timeout:          timeout,
	}
}

func (s *feedService) Sources() []dtos.FeedSource {
	return utils.Map(s.feeds, func(f shared.Feed) dtos.FeedSource {
		return f.Descriptor()
	})
}

func (s *feedService) FetchOne(ctx context.Context, sourceID string) (dtos.FeedResult, error) {
	for _, feed := range s.feeds {
		if feed.Descriptor().ID != sourceID {
			continue
		}
		// concurrent callers share this run, it must not end with the caller that started it
		runCtx := context.WithoutCancel(ctx)
		res, _, _ := s.inflight.Do(sourceID, func() (any, error) {
			return s.run(runCtx, feed), nil
		})
		return res.(dtos.FeedResult), nil
	}
	return dtos.FeedResult{}, fmt.Errorf("unknown feed source %q: %w", sourceID, shared.ErrNotFound)
}

func (s *feedService) FetchAll(ctx context.Context) dtos.FeedRunSummary {
	summary := dtos.FeedRunSummary{
		Results: make(map[string]dtos.FeedResult, len(s.feeds)),
	}
	// sources run one after another, a failing source does not stop the others
	for _, feed := range s.feeds {
		id := feed.Descriptor().ID
		res, err := s.FetchOne(ctx, id)
		if err != nil {
			// cannot happen, the id comes from the feed itself
			res = dtos.FeedResult{Source: id, Error: err.Error()}
		}
		summary.Results[id] = res
		if res.Success {
			summary.TotalAdded += res.Added
		}
	}
	return summary
}

func (s *feedService) run(ctx context.Context, feed shared.Feed) dtos.FeedResult {
	descriptor := feed.Descriptor()
	start := time.Now()
	defer func() {
		monitoring.FeedRunDuration.WithLabelValues(descriptor.ID).Observe(time.Since(start).Seconds())
	}()

	slog.Info("fetching feed", "source", descriptor.ID)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	threats, err := feed.Fetch(ctx)
	if err != nil {
		return s.failed(descriptor, 0, s.fetchErrorMessage(descriptor, err), err)
	}

	added, err := s.store(threats)
	if err != nil && database.IsUniqueViolation(err) {
		// a concurrent run inserted some of the threats after the existence check
		slog.Warn("unique violation during feed ingestion, retrying", "source", descriptor.ID)
		added, err = s.store(threats)
	}
	if err != nil {
		return s.failed(descriptor, len(threats), err.Error(), err)
	}

	monitoring.FeedRunsTotal.WithLabelValues(descriptor.ID, "success").Inc()
	monitoring.FeedThreatsAdded.WithLabelValues(descriptor.ID).Add(float64(added))
	slog.Info("feed fetched", "source", descriptor.ID, "added", added, "total", len(threats), "duration", time.Since(start))

	return dtos.FeedResult{
		Source:  descriptor.ID,
		Success: true,
		Added:   int(added),
		Total:   len(threats),
	}
}

func (s *feedService) failed(descriptor dtos.FeedSource, total int, msg string, err error) dtos.FeedResult {
	monitoring.FeedRunsTotal.WithLabelValues(descriptor.ID, "failure").Inc()
	slog.Error("could not fetch feed", "source", descriptor.ID, "err", err)
	return dtos.FeedResult{
		Source: descriptor.ID,
		Total:  total,
		Error:  msg,
	}
}

func (s *feedService) fetchErrorMessage(descriptor dtos.FeedSource, err error) string {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Sprintf("request to %s timed out after %s", descriptor.Name, s.timeout)
	}
	return err.Error()
}

// store inserts every threat whose external id is not yet known.
// All inserts of one call are committed together or not at all.
func (s *feedService) store(threats []models.Threat) (int64, error) {
	unique := utils.UniqBy(threats, func(t models.Threat) string {
		return t.ExternalID
	})
	if len(unique) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	for i := range unique {
		unique[i].IngestedAt = now
		unique[i].Active = true
	}

	var added int64
	err := s.threatRepository.Transaction(func(tx shared.DB) error {
		existing, err := s.threatRepository.FindExistingExternalIDs(tx, utils.Map(unique, func(t models.Threat) string {
			return t.ExternalID
		}))
		if err != nil {
			return err
		}
		known := make(map[string]struct{}, len(existing))
		for _, id := range existing {
			known[id] = struct{}{}
		}
		fresh := utils.Filter(unique, func(t models.Threat) bool {
			_, ok := known[t.ExternalID]
			return !ok
		})

		added, err = s.threatRepository.CreateIfAbsent(tx, fresh)
		return err
	})
	if err != nil {
		return 0, err
	}
	return added, nil
}
