package snpscan

import (
	"bufio"
	"compress/bzip2"
	"compress/gzip"
	"compress/zlib"
	"io"

	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

type DataType byte

const (
	DataTypeInvalid DataType = iota
	DataTypeNoCompression
	DataTypeGzip
	DataTypeZip
	DataTypeXZ
	DataTypeZ
	DataTypeBZip2
)

var byteCodeSigs = map[DataType][]byte{
	DataTypeGzip:  {0x1f, 0x8b, 0x08},
	DataTypeZip:   {0x50, 0x4b, 0x03, 0x04},
	DataTypeXZ:    {0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00},
	DataTypeZ:     {0x1f, 0x9d},
	DataTypeBZip2: {0x42, 0x5a, 0x68},
}

func (dt DataType) String() string {
	switch dt {
	case DataTypeNoCompression:
		return "uncompressed"
	case DataTypeGzip:
		return "gzip"
	case DataTypeZip:
		return "zip"
	case DataTypeXZ:
		return "xz"
	case DataTypeZ:
		return "zlib"
	case DataTypeBZip2:
		return "bzip2"
	}

	return "invalid"
}

// DetectDataType matches the leading bytes of a FASTA or VCF stream against
// known compression signatures. Byte code signatures from
// https://stackoverflow.com/a/19127748/199475
func DetectDataType(head []byte) DataType {
Outer:
	for dt, sig := range byteCodeSigs {
		if len(head) < len(sig) {
			continue
		}
		for position := range sig {
			if head[position] != sig[position] {
				continue Outer
			}
		}
		return dt
	}

	return DataTypeNoCompression
}

// MaybeDecompress peeks at the start of r and, if it carries a known
// compression signature, wraps it in the matching decompressor. Inputs that
// are too short to hold a signature (including empty inputs) are returned
// uncompressed.
func MaybeDecompress(r io.Reader) (io.Reader, DataType, error) {
	buffered := bufio.NewReader(r)

	// Peek does not consume, so the decompressor sees the signature too.
	head, err := buffered.Peek(6)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, DataTypeInvalid, err
	}

	dt := DetectDataType(head)
	switch dt {
	case DataTypeGzip:
		zr, err := gzip.NewReader(buffered)
		return zr, dt, err
	case DataTypeZip:
		// Only the first member of a zip archive is read.
		zr := zipstream.NewReader(buffered)
		if _, err := zr.Next(); err != nil {
			return nil, dt, err
		}
		return zr, dt, nil
	case DataTypeBZip2:
		return bzip2.NewReader(buffered), dt, nil
	case DataTypeXZ:
		reader, err := xz.NewReader(buffered, 0)
		if err != nil {
			return nil, dt, err
		}
		return reader, dt, nil
	case DataTypeZ:
		zr, err := zlib.NewReader(buffered)
		return zr, dt, err
	}

	return buffered, dt, nil
}
