package format

type (
	ScalarType      uint8
	CompressionType uint8
)

const (
	// ScalarInvalid marks an unset or unknown scalar type. Its item size is
	// zero, which every decode path rejects.
	ScalarInvalid ScalarType = 0x0

	ScalarInt8    ScalarType = 0x1
	ScalarUint8   ScalarType = 0x2
	ScalarInt16   ScalarType = 0x3
	ScalarUint16  ScalarType = 0x4
	ScalarInt32   ScalarType = 0x5
	ScalarUint32  ScalarType = 0x6
	ScalarInt64   ScalarType = 0x7
	ScalarUint64  ScalarType = 0x8
	ScalarFloat32 ScalarType = 0x9
	ScalarFloat64 ScalarType = 0xA

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Size returns the item size in bytes of the scalar type, or 0 for an
// invalid type.
func (s ScalarType) Size() int {
	switch s {
	case ScalarInt8, ScalarUint8:
		return 1
	case ScalarInt16, ScalarUint16:
		return 2
	case ScalarInt32, ScalarUint32, ScalarFloat32:
		return 4
	case ScalarInt64, ScalarUint64, ScalarFloat64:
		return 8
	default:
		return 0
	}
}

// Valid reports whether the scalar type is one of the fixed-width kinds.
func (s ScalarType) Valid() bool {
	return s.Size() != 0
}

func (s ScalarType) String() string {
	switch s {
	case ScalarInt8:
		return "Int8"
	case ScalarUint8:
		return "Uint8"
	case ScalarInt16:
		return "Int16"
	case ScalarUint16:
		return "Uint16"
	case ScalarInt32:
		return "Int32"
	case ScalarUint32:
		return "Uint32"
	case ScalarInt64:
		return "Int64"
	case ScalarUint64:
		return "Uint64"
	case ScalarFloat32:
		return "Float32"
	case ScalarFloat64:
		return "Float64"
	default:
		return "Invalid"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
