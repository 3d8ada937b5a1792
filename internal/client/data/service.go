// Package data is the typed facade over the generic entity machinery:
// characters and parties in, sync-tracked entities out. All writes go
// through the sync engine so they are mirrored and queued atomically.
package data

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/greyhelm/sheetsync/internal/client/storage"
	"github.com/greyhelm/sheetsync/internal/models"
	"github.com/greyhelm/sheetsync/internal/validation"
)

// OfflineWriter is the subset of the sync engine the data service writes
// through.
type OfflineWriter interface {
	SaveOffline(ctx context.Context, entity *models.Entity) error
	DeleteOffline(ctx context.Context, entityType models.EntityType, id string) error
}

// CharacterRecord pairs a character with its sync state.
type CharacterRecord struct {
	Character  models.Character
	SyncStatus models.SyncStatus
}

// PartyRecord pairs a party with its sync state.
type PartyRecord struct {
	Party      models.Party
	SyncStatus models.SyncStatus
}

// Service defines the client-side sheet operations.
type Service interface {
	AddCharacter(ctx context.Context, ownerID string, character *models.Character) error
	GetCharacter(ctx context.Context, id string) (*CharacterRecord, error)
	ListCharacters(ctx context.Context) ([]*CharacterRecord, error)
	UpdateCharacter(ctx context.Context, character *models.Character) error
	DeleteCharacter(ctx context.Context, id string) error

	AddParty(ctx context.Context, ownerID string, party *models.Party) error
	GetParty(ctx context.Context, id string) (*PartyRecord, error)
	ListParties(ctx context.Context) ([]*PartyRecord, error)
	UpdateParty(ctx context.Context, party *models.Party) error
	DeleteParty(ctx context.Context, id string) error
}

type service struct {
	writer OfflineWriter
	mirror storage.MirrorStorage
}

// NewService creates a new sheet data service.
func NewService(writer OfflineWriter, mirror storage.MirrorStorage) Service {
	return &service{
		writer: writer,
		mirror: mirror,
	}
}

// AddCharacter creates a new character sheet
func (s *service) AddCharacter(ctx context.Context, ownerID string, character *models.Character) error {
	if err := validation.ValidateName(character.Name); err != nil {
		return fmt.Errorf("invalid character name: %w", err)
	}

	if character.ID == "" {
		character.ID = uuid.New().String()
	}

	return s.save(ctx, ownerID, models.EntityTypeCharacter, character.ID, character)
}

// GetCharacter retrieves a character sheet by ID
func (s *service) GetCharacter(ctx context.Context, id string) (*CharacterRecord, error) {
	entity, err := s.mirror.GetEntity(ctx, models.EntityTypeCharacter, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	record := &CharacterRecord{SyncStatus: entity.SyncStatus}
	if err := json.Unmarshal(entity.Data, &record.Character); err != nil {
		return nil, fmt.Errorf("failed to unmarshal character: %w", err)
	}

	return record, nil
}

// ListCharacters returns all local character sheets
func (s *service) ListCharacters(ctx context.Context) ([]*CharacterRecord, error) {
	entities, err := s.mirror.ListEntities(ctx, models.EntityTypeCharacter)
	if err != nil {
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}

	records := make([]*CharacterRecord, 0, len(entities))
	for _, entity := range entities {
		record := &CharacterRecord{SyncStatus: entity.SyncStatus}
		if err := json.Unmarshal(entity.Data, &record.Character); err != nil {
			return nil, fmt.Errorf("failed to unmarshal character %s: %w", entity.ID, err)
		}
		records = append(records, record)
	}

	return records, nil
}

// UpdateCharacter saves changes to an existing character sheet
func (s *service) UpdateCharacter(ctx context.Context, character *models.Character) error {
	if err := validation.ValidateName(character.Name); err != nil {
		return fmt.Errorf("invalid character name: %w", err)
	}

	existing, err := s.mirror.GetEntity(ctx, models.EntityTypeCharacter, character.ID)
	if err != nil {
		return fmt.Errorf("failed to get character: %w", err)
	}

	return s.save(ctx, existing.OwnerID, models.EntityTypeCharacter, character.ID, character)
}

// DeleteCharacter removes a character sheet
func (s *service) DeleteCharacter(ctx context.Context, id string) error {
	if err := s.writer.DeleteOffline(ctx, models.EntityTypeCharacter, id); err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}
	return nil
}

// AddParty creates a new party
func (s *service) AddParty(ctx context.Context, ownerID string, party *models.Party) error {
	if err := validation.ValidateName(party.Name); err != nil {
		return fmt.Errorf("invalid party name: %w", err)
	}

	if party.ID == "" {
		party.ID = uuid.New().String()
	}

	return s.save(ctx, ownerID, models.EntityTypeParty, party.ID, party)
}

// GetParty retrieves a party by ID
func (s *service) GetParty(ctx context.Context, id string) (*PartyRecord, error) {
	entity, err := s.mirror.GetEntity(ctx, models.EntityTypeParty, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get party: %w", err)
	}

	record := &PartyRecord{SyncStatus: entity.SyncStatus}
	if err := json.Unmarshal(entity.Data, &record.Party); err != nil {
		return nil, fmt.Errorf("failed to unmarshal party: %w", err)
	}

	return record, nil
}

// ListParties returns all local parties
func (s *service) ListParties(ctx context.Context) ([]*PartyRecord, error) {
	entities, err := s.mirror.ListEntities(ctx, models.EntityTypeParty)
	if err != nil {
		return nil, fmt.Errorf("failed to list parties: %w", err)
	}

	records := make([]*PartyRecord, 0, len(entities))
	for _, entity := range entities {
		record := &PartyRecord{SyncStatus: entity.SyncStatus}
		if err := json.Unmarshal(entity.Data, &record.Party); err != nil {
			return nil, fmt.Errorf("failed to unmarshal party %s: %w", entity.ID, err)
		}
		records = append(records, record)
	}

	return records, nil
}

// UpdateParty saves changes to an existing party
func (s *service) UpdateParty(ctx context.Context, party *models.Party) error {
	if err := validation.ValidateName(party.Name); err != nil {
		return fmt.Errorf("invalid party name: %w", err)
	}

	existing, err := s.mirror.GetEntity(ctx, models.EntityTypeParty, party.ID)
	if err != nil {
		return fmt.Errorf("failed to get party: %w", err)
	}

	return s.save(ctx, existing.OwnerID, models.EntityTypeParty, party.ID, party)
}

// DeleteParty removes a party
func (s *service) DeleteParty(ctx context.Context, id string) error {
	if err := s.writer.DeleteOffline(ctx, models.EntityTypeParty, id); err != nil {
		return fmt.Errorf("failed to delete party: %w", err)
	}
	return nil
}

func (s *service) save(ctx context.Context, ownerID string, entityType models.EntityType, id string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", entityType, err)
	}

	entity := &models.Entity{
		ID:      id,
		OwnerID: ownerID,
		Type:    entityType,
		Data:    data,
	}
	if err := s.writer.SaveOffline(ctx, entity); err != nil {
		return fmt.Errorf("failed to save %s: %w", entityType, err)
	}

	return nil
}
