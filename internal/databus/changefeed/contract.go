package changefeed

//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go

import (
	"context"

	"github.com/s21platform/chat-service/internal/model"
)

type Dispatcher interface {
	Dispatch(ctx context.Context, event model.ChangeEvent)
}
