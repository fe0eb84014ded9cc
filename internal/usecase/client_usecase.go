package usecase

import (
	"context"
	"errors"
	"strings"

	"marcenaria_rampanelli/internal/domain/entities"
	"marcenaria_rampanelli/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrInvalidClientName = errors.New("invalid client name")

// IClientUseCase exposes the client directory used by the quote form
// autocomplete.
type IClientUseCase interface {
	Search(ctx context.Context, term string) ([]entities.Client, error)
	Add(ctx context.Context, name, email, phone string) (entities.Client, error)
}

type ClientUseCase struct {
	directory interfaces.IClientDirectory
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(directory interfaces.IClientDirectory) *ClientUseCase {
	return &ClientUseCase{directory: directory}
}

func (u *ClientUseCase) Search(ctx context.Context, term string) ([]entities.Client, error) {
	return u.directory.Search(ctx, strings.TrimSpace(term))
}

func (u *ClientUseCase) Add(ctx context.Context, name, email, phone string) (entities.Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Client{}, ErrInvalidClientName
	}

	c := entities.Client{
		ID:    uuid.NewString(),
		Name:  name,
		Email: strings.TrimSpace(email),
		Phone: strings.TrimSpace(phone),
	}
	return u.directory.Add(ctx, c)
}
