package commands

import (
	"context"

	"github.com/djsutherland/chips-with-friends/internal/domain/card"
	"github.com/djsutherland/chips-with-friends/internal/infra"
	"github.com/djsutherland/chips-with-friends/internal/pkg/errs"
	"github.com/djsutherland/chips-with-friends/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrDuplicateBarcode = errs.New("barcode already registered")

type RegisterCardResult struct {
	CardID uuid.UUID
}

type CardCommands interface {
	RegisterCard(ctx context.Context, req RegisterCardRequest) (*RegisterCardResult, error)
}

type RegisterCardRequest struct {
	Barcode    string
	Registrant string
	Phone      string
}

type cardCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewCardCommands(uow shared.UnitOfWork) CardCommands {
	return &cardCommandsImpl{uow: uow}
}

func (uc *cardCommandsImpl) RegisterCard(ctx context.Context, req RegisterCardRequest) (*RegisterCardResult, error) {
	barcode, err := card.NewBarcode(req.Barcode)
	if err != nil {
		return nil, err
	}

	c, err := card.NewCard(barcode, req.Registrant, req.Phone)
	if err != nil {
		return nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Cards().Create(ctx, tx.DB(), c)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrDuplicateBarcode)
		}
		return nil, err
	}

	return &RegisterCardResult{CardID: createdID}, nil
}
