package mutableurl

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/pkg/errors"
	"github.com/sigurn/crc8"
)

const snapshotVersion uint8 = 1

// protocol, hostname, port, pathname, search, hash
const snapshotFieldCount = 6

type snapshotHeader struct {
	FrameLength uint32
	Version     uint8
	HeaderCRC   uint8
	FieldCount  uint16
	BodyCRC     uint32
}

var sizeOfSnapshotHeader = binary.Size(snapshotHeader{})

var crc8Table = crc8.MakeTable(crc8.CRC8)

func headerChecksum(h snapshotHeader) (uint8, error) {
	h.HeaderCRC = 0
	h.BodyCRC = 0

	var b bytes.Buffer
	if err := binary.Write(&b, binary.LittleEndian, &h); err != nil {
		return 0, err
	}

	return crc8.Checksum(b.Bytes(), crc8Table), nil
}

func (u *URL) fields() []*string {
	return []*string{&u.protocol, &u.hostname, &u.port, &u.pathname, &u.search, &u.hash}
}

// MarshalBinary writes the six fields as they are. Unlike String this keeps
// states that do not survive a parse, such as a search without a pathname
// behind a hostname.
func (u *URL) MarshalBinary() ([]byte, error) {
	var body bytes.Buffer
	var lenbuf [binary.MaxVarintLen64]byte
	for _, f := range u.fields() {
		n := binary.PutUvarint(lenbuf[:], uint64(len(*f)))
		body.Write(lenbuf[:n])
		body.WriteString(*f)
	}

	header := snapshotHeader{
		FrameLength: uint32(sizeOfSnapshotHeader + body.Len()),
		Version:     snapshotVersion,
		FieldCount:  snapshotFieldCount,
	}

	crc, err := headerChecksum(header)
	if err != nil {
		return nil, err
	}
	header.HeaderCRC = crc
	header.BodyCRC = crc32.Checksum(body.Bytes(), crc32.IEEETable)

	var b bytes.Buffer
	if err := binary.Write(&b, binary.LittleEndian, &header); err != nil {
		return nil, err
	}
	b.Write(body.Bytes())

	return b.Bytes(), nil
}

// UnmarshalBinary leaves u untouched when data is rejected.
func (u *URL) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)

	var header snapshotHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return errors.Wrap(err, "read snapshot header")
	}

	crc, err := headerChecksum(header)
	if err != nil {
		return err
	}
	if header.HeaderCRC != crc {
		return fmt.Errorf("snapshot header crc8 check fail")
	}

	if header.Version != snapshotVersion {
		return fmt.Errorf("unsupported snapshot version %v", header.Version)
	}

	if header.FieldCount != snapshotFieldCount {
		return fmt.Errorf("expect %v snapshot fields get %v", snapshotFieldCount, header.FieldCount)
	}

	if int(header.FrameLength) != len(data) {
		return fmt.Errorf("snapshot length %v does not match frame length %v", len(data), header.FrameLength)
	}

	body := data[sizeOfSnapshotHeader:]
	if header.BodyCRC != crc32.Checksum(body, crc32.IEEETable) {
		return fmt.Errorf("snapshot body crc32 check fail")
	}

	var next URL
	for i, f := range next.fields() {
		n, err := binary.ReadUvarint(r)
		if err != nil {
			return errors.Wrapf(err, "read length of snapshot field %v", i)
		}

		if n > uint64(r.Len()) {
			return errors.Wrapf(io.ErrUnexpectedEOF, "snapshot field %v", i)
		}

		buf := make([]byte, n)
		if _, err := io.ReadFull(r, buf); err != nil {
			return errors.Wrapf(err, "read snapshot field %v", i)
		}
		*f = string(buf)
	}

	if r.Len() != 0 {
		return fmt.Errorf("%v trailing bytes after snapshot fields", r.Len())
	}

	*u = next
	return nil
}
