package migration

import (
	"context"
	"errors"

	errs "github.com/amirhossein-jamali/exchange-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/usecase"
)

// defaultAssets are listed on an empty development database
var defaultAssets = []usecase.CreateAssetRequest{
	{Name: "Bitcoin", Symbol: "BTCd", Rate: "3500000", TotalSupply: "21000000"},
	{Name: "Ethereum", Symbol: "ETHd", Rate: "190000", TotalSupply: "120000000"},
	{Name: "Dogecoin", Symbol: "DGEd", Rate: "7.5", TotalSupply: "132670764264"},
}

// CreateDefaultAssets lists the demo assets on behalf of actorID, skipping those already listed.
// It returns how many assets were created.
func CreateDefaultAssets(ctx context.Context, assetService usecase.AssetUseCase, actorID uint64) (int, error) {
	created := 0
	for _, req := range defaultAssets {
		if _, err := assetService.Create(ctx, actorID, req); err != nil {
			if errors.Is(err, errs.ErrDuplicateAsset) {
				continue
			}
			return created, err
		}
		created++
	}

	return created, nil
}
