package stats

import (
	"context"

	"recipe-study-backend/domain"
)

// Legacy dashboards assumed a fifth of the catalog is relevant to every
// participant and derived a "recall" figure from it. The assumption has no
// statistical grounding; the figure is kept only as a labelled placeholder.
const placeholderRecallShare = 0.2

type (
	StatsService interface {
		GetStudyStats(ctx context.Context) (domain.StudyStatsResponse, error)
	}

	statsService struct {
		statsRepository StatsRepository
	}
)

func NewStatsService(statsRepository StatsRepository) StatsService {
	return &statsService{statsRepository: statsRepository}
}

// GetStudyStats assembles the operator dashboard. Every aggregate tolerates
// zero rows: an arm nobody has joined yet reports zero counts and a zero
// completion rate rather than an error.
func (s *statsService) GetStudyStats(ctx context.Context) (domain.StudyStatsResponse, error) {
	total, completed, err := s.statsRepository.CountParticipants(ctx)
	if err != nil {
		return domain.StudyStatsResponse{}, err
	}
	interactions, err := s.statsRepository.CountInteractions(ctx)
	if err != nil {
		return domain.StudyStatsResponse{}, err
	}
	breakdown, err := s.statsRepository.VersionBreakdown(ctx)
	if err != nil {
		return domain.StudyStatsResponse{}, err
	}
	ratings, err := s.statsRepository.RatingAverages(ctx)
	if err != nil {
		return domain.StudyStatsResponse{}, err
	}
	questionnaires, err := s.statsRepository.QuestionnaireAverages(ctx)
	if err != nil {
		return domain.StudyStatsResponse{}, err
	}

	byVersion := make(map[string]*domain.VersionStats, len(domain.Versions))
	versions := make([]domain.VersionStats, len(domain.Versions))
	for i, v := range domain.Versions {
		versions[i] = domain.VersionStats{Version: v}
		byVersion[v] = &versions[i]
	}

	for _, row := range breakdown {
		vs, ok := byVersion[row.Version]
		if !ok {
			continue
		}
		vs.Participants = row.Participants
		vs.Completed = row.Completed
		vs.CompletionRate = rate(row.Completed, row.Participants)
	}
	for _, row := range ratings {
		vs, ok := byVersion[row.Version]
		if !ok {
			continue
		}
		vs.AverageRating = row.AvgRating
		vs.RatingCount = row.RatingCount
	}
	for _, row := range questionnaires {
		vs, ok := byVersion[row.Version]
		if !ok {
			continue
		}
		vs.AvgUsability = row.AvgUsability
		vs.AvgQuality = row.AvgQuality
		vs.AvgTrust = row.AvgTrust
		vs.AvgClarity = row.AvgClarity
		vs.AvgSustainImport = row.AvgSustainImport
		vs.AvgSatisfaction = row.AvgSatisfaction
	}

	return domain.StudyStatsResponse{
		TotalParticipants:      total,
		CompletedParticipants:  completed,
		CompletionRate:         rate(completed, total),
		TotalInteractions:      interactions,
		AvgInteractionsPerUser: avg(interactions, total),
		Versions:               versions,
		PlaceholderRecall:      placeholderRecallShare,
	}, nil
}

func rate(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total)
}

func avg(sum, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(sum) / float64(total)
}
