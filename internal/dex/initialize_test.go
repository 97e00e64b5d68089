package dex

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

func TestInitializeCalldataRoundTrip(t *testing.T) {
	sqrtPrice, _ := new(big.Int).SetString("2505414483750479311864", 10)

	data, err := EncodeInitialize(sqrtPrice)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(data) != 4+32 {
		t.Fatalf("calldata length %d", len(data))
	}
	// initialize(uint160)
	if got := hexutil.Encode(data[:4]); got != "0xf637731d" {
		t.Fatalf("selector mismatch: %s", got)
	}

	decoded, err := DecodeInitialize(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Cmp(sqrtPrice) != 0 {
		t.Fatalf("sqrt price mismatch: %s != %s", decoded, sqrtPrice)
	}
}

func TestEncodeInitializeRejectsInvalid(t *testing.T) {
	if _, err := EncodeInitialize(big.NewInt(0)); err == nil {
		t.Fatalf("expected error for zero sqrt price")
	}
	if _, err := EncodeInitialize(big.NewInt(-1)); err == nil {
		t.Fatalf("expected error for negative sqrt price")
	}
	tooWide := new(big.Int).Lsh(big.NewInt(1), 160)
	if _, err := EncodeInitialize(tooWide); err == nil {
		t.Fatalf("expected error for uint160 overflow")
	}
}

func TestDecodeInitializeRejectsOtherCalldata(t *testing.T) {
	if _, err := DecodeInitialize([]byte{0x01, 0x02}); err == nil {
		t.Fatalf("expected error for short calldata")
	}

	// slot0() selector followed by one zero word.
	data := append([]byte{0x38, 0x50, 0xc7, 0xbd}, make([]byte, 32)...)
	if _, err := DecodeInitialize(data); err == nil {
		t.Fatalf("expected error for foreign selector")
	}
}
