package dex

import (
	"bytes"
	"fmt"
	"math/big"
)

const methodInitialize = "initialize"

// EncodeInitialize packs calldata for initialize(uint160 sqrtPriceX96).
func EncodeInitialize(sqrtPriceX96 *big.Int) ([]byte, error) {
	if sqrtPriceX96 == nil || sqrtPriceX96.Sign() <= 0 {
		return nil, fmt.Errorf("sqrt price must be positive")
	}
	if sqrtPriceX96.BitLen() > 160 {
		return nil, fmt.Errorf("sqrt price overflows uint160: %s", sqrtPriceX96)
	}

	poolABI, err := V3PoolABI()
	if err != nil {
		return nil, fmt.Errorf("parse pool abi: %w", err)
	}
	data, err := poolABI.Pack(methodInitialize, sqrtPriceX96)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", methodInitialize, err)
	}
	return data, nil
}

// DecodeInitialize extracts sqrtPriceX96 from initialize calldata.
func DecodeInitialize(data []byte) (*big.Int, error) {
	poolABI, err := V3PoolABI()
	if err != nil {
		return nil, fmt.Errorf("parse pool abi: %w", err)
	}
	method := poolABI.Methods[methodInitialize]
	if len(data) < 4 || !bytes.Equal(data[:4], method.ID) {
		return nil, fmt.Errorf("calldata is not %s", method.Sig)
	}

	values, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", methodInitialize, err)
	}
	if len(values) != 1 {
		return nil, fmt.Errorf("%s argument count %d", methodInitialize, len(values))
	}
	return asBigInt(values[0])
}

func asBigInt(value interface{}) (*big.Int, error) {
	switch v := value.(type) {
	case *big.Int:
		return new(big.Int).Set(v), nil
	case big.Int:
		return new(big.Int).Set(&v), nil
	case uint64:
		return new(big.Int).SetUint64(v), nil
	default:
		return nil, fmt.Errorf("unsupported int type %T", value)
	}
}
