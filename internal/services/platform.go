package services

import (
	"context"

	"vitaverse/internal/models"
	"vitaverse/internal/repository"

	"github.com/sirupsen/logrus"
)

const recentPurchasesLimit = 10

type PlatformService struct {
	events   repository.ContractEventRepository
	badges   *BadgeService
	averages AveragesSource
}

func NewPlatformService(events repository.ContractEventRepository, badges *BadgeService, averages AveragesSource) *PlatformService {
	return &PlatformService{events: events, badges: badges, averages: averages}
}

// Stats summarises indexed activity. Badge names and averages are best
// effort: a failed chain read leaves them empty rather than failing.
func (s *PlatformService) Stats(ctx context.Context) (*models.PlatformStats, error) {
	total, err := s.events.Count()
	if err != nil {
		return nil, err
	}
	recent, err := s.events.List(repository.EventFilter{
		Name:  models.EventBadgePurchased,
		Limit: recentPurchasesLimit,
	})
	if err != nil {
		return nil, err
	}
	popularity, err := s.events.PurchasesPerBadge()
	if err != nil {
		return nil, err
	}

	stats := &models.PlatformStats{
		TotalTransactions:  total,
		RecentTransactions: recent,
		Popularity:         popularity,
	}

	if s.badges != nil && (len(recent) > 0 || len(popularity) > 0) {
		catalogue, err := s.badges.Catalogue(ctx, nil)
		if err != nil {
			logrus.WithError(err).Warn("Badge names unavailable for platform stats")
		} else {
			names := make(map[uint64]string, len(catalogue))
			for _, b := range catalogue {
				names[b.ID] = b.Name
			}
			for i := range stats.Popularity {
				stats.Popularity[i].BadgeName = names[stats.Popularity[i].BadgeID]
			}
			for i := range stats.RecentTransactions {
				if id := stats.RecentTransactions[i].BadgeID; id != nil && stats.RecentTransactions[i].BadgeName == "" {
					stats.RecentTransactions[i].BadgeName = names[*id]
				}
			}
		}
	}

	if s.averages != nil {
		avg, err := s.averages.Averages(ctx)
		if err != nil {
			logrus.WithError(err).Warn("Platform averages unavailable")
		} else {
			stats.Averages = avg
		}
	}
	return stats, nil
}

func (s *PlatformService) Events(filter repository.EventFilter) ([]models.ContractEvent, error) {
	return s.events.List(filter)
}
