package bigint

const (
	limbBits = 32
	limbMask = 0xFFFFFFFF
	limbBase = uint64(1) << limbBits
	signBit  = 0x80000000

	// Operands shorter than this many limbs are multiplied with the
	// schoolbook algorithm rather than split further.
	karatsubaThreshold = 32

	// Decimal conversion moves nine digits per single-limb division.
	decimalChunk       = 1000000000
	decimalChunkDigits = 9
)

var (
	zeroInt     Int
	oneInt      = IntFrom64(1)
	minusOneInt = IntFrom64(-1)
)
