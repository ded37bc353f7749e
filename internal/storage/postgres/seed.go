package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/avolkou/crmdesk/internal/domain/model"
)

type seedClient struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	Address   *string `json:"address"`
	City      *string `json:"city"`
	Zip       *string `json:"zip"`
	Company   *string `json:"company"`
}

// ImportClients loads clients from a JSON array file. Entries whose email
// already exists are skipped, so re-running the import is harmless. A
// missing file is not an error.
func (s *Storage) ImportClients(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Info("no client seed file found", slog.String("path", path))
			return nil
		}
		return fmt.Errorf("read seed file: %w", err)
	}

	var seeds []seedClient
	if err := json.Unmarshal(data, &seeds); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	clients := s.Clients()
	imported := 0
	for _, seed := range seeds {
		if seed.Email != nil {
			exists, err := clients.ExistsByEmail(ctx, *seed.Email)
			if err != nil {
				return fmt.Errorf("check seed email: %w", err)
			}
			if exists {
				continue
			}
		}

		draft := model.ClientDraft{
			FirstName: seed.FirstName,
			LastName:  seed.LastName,
			Phone:     seed.Phone,
			Email:     seed.Email,
			Address:   seed.Address,
			City:      seed.City,
			Zip:       seed.Zip,
			Company:   seed.Company,
		}
		if _, err := clients.Create(ctx, draft); err != nil {
			return fmt.Errorf("import client: %w", err)
		}
		imported++
	}

	s.logger.Info("client import completed", slog.Int("imported", imported), slog.Int("total", len(seeds)))
	return nil
}
