package chain

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

//go:embed abi/vitaverse.json
var vitaverseABIJSON string

//go:embed abi/token.json
var tokenABIJSON string

func VitaVerseABI() (abi.ABI, error) {
	parsed, err := abi.JSON(strings.NewReader(vitaverseABIJSON))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("parse vitaverse abi: %w", err)
	}
	return parsed, nil
}

func TokenABI() (abi.ABI, error) {
	parsed, err := abi.JSON(strings.NewReader(tokenABIJSON))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("parse token abi: %w", err)
	}
	return parsed, nil
}
