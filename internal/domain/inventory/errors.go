package inventory

import "errors"

var (
	ErrFactoryNotFound   = errors.New("factory not found")
	ErrMachineNotFound   = errors.New("machine not found")
	ErrChallanNotFound   = errors.New("challan not found")
	ErrSerialExists      = errors.New("machine serial already exists")
	ErrMachineNotInStock = errors.New("machine is not in stock")
)
