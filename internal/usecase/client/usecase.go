package client

import (
	"context"
	"errors"
	"time"

	domainClient "rentora-backend/internal/domain/client"
	"rentora-backend/internal/domain/uow"
	"rentora-backend/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	uow uow.UnitOfWork
}

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

type CreateClientInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type ClientDTO struct {
	ClientID  string    `json:"client_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *Usecase) Create(ctx context.Context, in CreateClientInput) (*ClientDTO, error) {
	if in.Name == "" {
		return nil, errors.New("invalid input")
	}
	var dto *ClientDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		c := &domainClient.Client{
			ClientID: id.NewID32(),
			Name:     in.Name,
			Email:    in.Email,
			Phone:    in.Phone,
		}
		if err := r.Clients.Create(ctx, c); err != nil {
			return err
		}
		dto = toDTO(c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, clientID string) (*ClientDTO, error) {
	var dto *ClientDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		c, err := r.Clients.GetByClientID(ctx, clientID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainClient.ErrNotFound
			}
			return err
		}
		dto = toDTO(c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func toDTO(c *domainClient.Client) *ClientDTO {
	return &ClientDTO{
		ClientID:  c.ClientID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
	}
}
