package service

import (
	"context"
	"fmt"
	"sort"

	"royale-tracker/internal/constants"
	"royale-tracker/internal/domain"

	"github.com/rs/zerolog"
)

// PlayerService serves player lookups straight from the API; nothing here is cached.
type PlayerService struct {
	royale RoyaleAPI
	logger zerolog.Logger
}

func NewPlayerService(royale RoyaleAPI, logger zerolog.Logger) *PlayerService {
	return &PlayerService{royale: royale, logger: logger}
}

func (s *PlayerService) GetPlayer(ctx context.Context, tag string) (*domain.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	tag = domain.NormalizeTag(tag)
	if tag == "#" {
		return nil, ErrEmptyTag
	}

	s.logger.Info().Str("player_tag", tag).Msg("getting player")

	resp, err := s.royale.GetPlayer(ctx, tag)
	if err != nil {
		s.logger.Error().Err(err).Str("player_tag", tag).Msg("failed to fetch player")
		return nil, fmt.Errorf("failed to fetch player: %w", err)
	}

	player := &domain.Player{
		Tag:            resp.Tag,
		Name:           resp.Name,
		ExpLevel:       resp.ExpLevel,
		Trophies:       resp.Trophies,
		BestTrophies:   resp.BestTrophies,
		Wins:           resp.Wins,
		Losses:         resp.Losses,
		BattleCount:    resp.BattleCount,
		ThreeCrownWins: resp.ThreeCrownWins,
		Role:           domain.Role(resp.Role),
		Donations:      resp.Donations,
		Arena:          resp.Arena.Name,
		CurrentDeck:    toDomainCards(resp.CurrentDeck),
		TopCards:       topCards(toDomainCards(resp.Cards), constants.TopCardsLimit),
	}
	if resp.Clan != nil {
		player.ClanTag = resp.Clan.Tag
		player.ClanName = resp.Clan.Name
	}

	s.logger.Info().Str("player_tag", player.Tag).Msg("player fetched successfully")
	return player, nil
}

// GetBattleLog returns the most recent battles, newest first.
func (s *PlayerService) GetBattleLog(ctx context.Context, tag string) ([]domain.Battle, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	tag = domain.NormalizeTag(tag)
	if tag == "#" {
		return nil, ErrEmptyTag
	}

	resp, err := s.royale.GetPlayerBattles(ctx, tag)
	if err != nil {
		s.logger.Error().Err(err).Str("player_tag", tag).Msg("failed to fetch battle log")
		return nil, fmt.Errorf("failed to fetch battle log: %w", err)
	}

	if len(resp) > constants.BattleLogLimit {
		resp = resp[:constants.BattleLogLimit]
	}
	battles := make([]domain.Battle, 0, len(resp))
	for _, b := range resp {
		battles = append(battles, toDomainBattle(b))
	}

	s.logger.Debug().Str("player_tag", tag).Int("count", len(battles)).Msg("battle log fetched")
	return battles, nil
}

func (s *PlayerService) GetUpcomingChests(ctx context.Context, tag string) ([]domain.Chest, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	tag = domain.NormalizeTag(tag)
	if tag == "#" {
		return nil, ErrEmptyTag
	}

	resp, err := s.royale.GetUpcomingChests(ctx, tag)
	if err != nil {
		s.logger.Error().Err(err).Str("player_tag", tag).Msg("failed to fetch upcoming chests")
		return nil, fmt.Errorf("failed to fetch upcoming chests: %w", err)
	}

	chests := make([]domain.Chest, 0, len(resp.Items))
	for _, c := range resp.Items {
		chests = append(chests, domain.Chest{Index: c.Index, Name: c.Name})
	}
	return chests, nil
}

// topCards keeps the n highest level cards, collection order breaking ties.
func topCards(cards []domain.Card, n int) []domain.Card {
	sorted := make([]domain.Card, len(cards))
	copy(sorted, cards)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Level > sorted[j].Level
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
