package solana

import (
	"bytes"
	"encoding/binary"

	"github.com/AlexZinkM/chainkit/internal/model"

	"github.com/gagliardetto/solana-go"
)

// Anchor discriminators of the Jupiter v6 swap instructions
var swapDiscriminators = [][]byte{
	{229, 23, 203, 151, 122, 227, 173, 42}, // route
	{193, 32, 155, 51, 65, 214, 156, 129},  // sharedAccountsRoute
	{208, 51, 239, 151, 123, 43, 237, 92},  // exactOutRoute
	{176, 209, 105, 168, 154, 125, 69, 62}, // sharedAccountsExactOutRoute
}

// discriminator, slippage_bps and platform_fee_bps
const minSwapDataLen = 8 + 2 + 1

// setSwapSlippage rewrites slippage_bps of the single Jupiter swap instruction in msg.
// slippage_bps is the u16 right before the trailing platform_fee_bps byte.
func setSwapSlippage(msg *solana.Message, bps uint16) error {
	programIndex := -1
	for i, key := range msg.AccountKeys {
		if key == JupiterProgramID {
			programIndex = i
			break
		}
	}
	if programIndex < 0 {
		return model.NewError(model.KindUnsupportedParameter, "no jupiter program in static keys")
	}

	found := false
	for i := range msg.Instructions {
		ix := &msg.Instructions[i]
		if int(ix.ProgramIDIndex) != programIndex || len(ix.Data) <= minSwapDataLen || !isSwap(ix.Data) {
			continue
		}
		if found {
			return model.NewError(model.KindUnsupportedParameter, "duplicate swap instruction")
		}
		found = true

		data := append([]byte(nil), ix.Data...)
		binary.LittleEndian.PutUint16(data[len(data)-3:len(data)-1], bps)
		ix.Data = data
	}
	if !found {
		return model.NewError(model.KindUnsupportedParameter, "no swap instruction")
	}
	return nil
}

func isSwap(data []byte) bool {
	for _, d := range swapDiscriminators {
		if bytes.Equal(data[:8], d) {
			return true
		}
	}
	return false
}
