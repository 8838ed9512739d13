// Copyright 2025 Esteban Alvarez. All Rights Reserved.
//
// Created: October 2025
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package transport

import (
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf8"
)

// Native binary protocol. Fixed-layout frames, little-endian integers, no
// length prefix on the fixed header.
//
// Request (42 + key_len bytes):
//
//	offset 0  size 1        cmd (1 = throttle)
//	offset 1  size 1        key_len (0–255)
//	offset 2  size 8        max_burst (i64)
//	offset 10 size 8        count_per_period (i64)
//	offset 18 size 8        period_seconds (i64)
//	offset 26 size 8        quantity (i64)
//	offset 34 size 8        timestamp (i64, unix nanos)
//	offset 42 size key_len  key bytes (UTF-8)
//
// Response (34 bytes, fixed):
//
//	offset 0  size 1  ok (1 = success; 0 = internal error, rest zero)
//	offset 1  size 1  allowed (0 or 1)
//	offset 2  size 8  limit (i64)
//	offset 10 size 8  remaining (i64)
//	offset 18 size 8  retry_after_seconds (i64)
//	offset 26 size 8  reset_after_seconds (i64)
const (
	CmdThrottle byte = 1

	RequestHeaderSize = 42
	ResponseSize      = 34
	MaxKeyLength      = 255
)

var (
	errKeyTooLong = errors.New("key exceeds 255 bytes")
	errKeyNotUTF8 = errors.New("key is not valid UTF-8")
)

// RequestFrame is a decoded native-protocol request.
type RequestFrame struct {
	Cmd            byte
	Key            string
	MaxBurst       int64
	CountPerPeriod int64
	Period         int64
	Quantity       int64
	TimestampNanos int64
}

// ResponseFrame is a decoded native-protocol response.
type ResponseFrame struct {
	OK              bool
	Allowed         bool
	Limit           int64
	Remaining       int64
	RetryAfterSecs  int64
	ResetAfterSecs  int64
}

// AppendRequest encodes f and appends the frame to dst.
func AppendRequest(dst []byte, f *RequestFrame) ([]byte, error) {
	if len(f.Key) > MaxKeyLength {
		return dst, errKeyTooLong
	}
	if !utf8.ValidString(f.Key) {
		return dst, errKeyNotUTF8
	}

	dst = append(dst, f.Cmd, byte(len(f.Key)))
	dst = binary.LittleEndian.AppendUint64(dst, uint64(f.MaxBurst))
	dst = binary.LittleEndian.AppendUint64(dst, uint64(f.CountPerPeriod))
	dst = binary.LittleEndian.AppendUint64(dst, uint64(f.Period))
	dst = binary.LittleEndian.AppendUint64(dst, uint64(f.Quantity))
	dst = binary.LittleEndian.AppendUint64(dst, uint64(f.TimestampNanos))
	dst = append(dst, f.Key...)
	return dst, nil
}

// DecodeRequestHeader parses the 42-byte fixed header. The caller reads
// keyLen further bytes and finishes with DecodeRequestKey.
func DecodeRequestHeader(header []byte) (f RequestFrame, keyLen int, err error) {
	if len(header) < RequestHeaderSize {
		return f, 0, fmt.Errorf("short request header: %d bytes", len(header))
	}
	f.Cmd = header[0]
	keyLen = int(header[1])
	f.MaxBurst = int64(binary.LittleEndian.Uint64(header[2:10]))
	f.CountPerPeriod = int64(binary.LittleEndian.Uint64(header[10:18]))
	f.Period = int64(binary.LittleEndian.Uint64(header[18:26]))
	f.Quantity = int64(binary.LittleEndian.Uint64(header[26:34]))
	f.TimestampNanos = int64(binary.LittleEndian.Uint64(header[34:42]))
	return f, keyLen, nil
}

// DecodeRequestKey validates and attaches the key bytes to f. The copy into
// a string is the single point where the key leaves the connection's read
// buffer.
func DecodeRequestKey(f *RequestFrame, key []byte) error {
	if !utf8.Valid(key) {
		return errKeyNotUTF8
	}
	f.Key = string(key)
	return nil
}

// AppendResponse encodes f and appends the 34-byte frame to dst.
func AppendResponse(dst []byte, f *ResponseFrame) []byte {
	dst = append(dst, boolByte(f.OK), boolByte(f.Allowed))
	dst = binary.LittleEndian.AppendUint64(dst, uint64(f.Limit))
	dst = binary.LittleEndian.AppendUint64(dst, uint64(f.Remaining))
	dst = binary.LittleEndian.AppendUint64(dst, uint64(f.RetryAfterSecs))
	dst = binary.LittleEndian.AppendUint64(dst, uint64(f.ResetAfterSecs))
	return dst
}

// DecodeResponse parses a 34-byte response frame.
func DecodeResponse(b []byte) (ResponseFrame, error) {
	var f ResponseFrame
	if len(b) < ResponseSize {
		return f, fmt.Errorf("short response frame: %d bytes", len(b))
	}
	f.OK = b[0] != 0
	f.Allowed = b[1] != 0
	f.Limit = int64(binary.LittleEndian.Uint64(b[2:10]))
	f.Remaining = int64(binary.LittleEndian.Uint64(b[10:18]))
	f.RetryAfterSecs = int64(binary.LittleEndian.Uint64(b[18:26]))
	f.ResetAfterSecs = int64(binary.LittleEndian.Uint64(b[26:34]))
	return f, nil
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
