package user

//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go

import (
	"context"

	"github.com/s21platform/chat-service/internal/model"
)

type DBRepo interface {
	UpsertUser(ctx context.Context, participant *model.Participant) error
}
