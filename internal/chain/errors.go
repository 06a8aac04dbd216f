package chain

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

var (
	ErrWalletUnavailable  = errors.New("no wallet configured")
	ErrConnectionRejected = errors.New("wallet connection rejected")
	ErrContractCall       = errors.New("contract call failed")
	ErrTransient          = errors.New("network error")
)

var transientMarkers = []string{
	"connection refused",
	"connection reset",
	"no such host",
	"i/o timeout",
	"timeout",
	"eof",
	"too many requests",
	"429",
	"502",
	"503",
	"504",
}

// Classify wraps a raw RPC error with one of the package sentinels. Errors
// that already carry a sentinel are returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	for _, known := range []error{ErrWalletUnavailable, ErrConnectionRejected, ErrContractCall, ErrTransient} {
		if errors.Is(err, known) {
			return err
		}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %w", ErrTransient, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %w", ErrTransient, err)
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range transientMarkers {
		if strings.Contains(msg, marker) {
			return fmt.Errorf("%w: %w", ErrTransient, err)
		}
	}
	return fmt.Errorf("%w: %w", ErrContractCall, err)
}

// UserMessage turns any chain error into the text shown to the user.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrWalletUnavailable):
		return "No wallet is available. Configure a wallet account to continue"
	case errors.Is(err, ErrConnectionRejected):
		return "Wallet connection was rejected"
	case errors.Is(err, ErrTransient):
		return "The network is unavailable, please try again"
	case errors.Is(err, ErrContractCall):
		if reason := revertReason(err); reason != "" {
			return "Transaction failed: " + reason
		}
		return "The contract rejected the request"
	default:
		return "Unexpected error"
	}
}

func revertReason(err error) string {
	msg := err.Error()
	const marker = "execution reverted: "
	if i := strings.Index(msg, marker); i >= 0 {
		return strings.TrimSpace(msg[i+len(marker):])
	}
	return ""
}
