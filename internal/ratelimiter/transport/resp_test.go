package transport

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseAll(t *testing.T, input string) (RespValue, int) {
	t.Helper()
	var p RespParser
	v, n, err := p.Parse([]byte(input))
	require.NoError(t, err)
	return v, n
}

func TestRespParseSimpleString(t *testing.T) {
	v, n := parseAll(t, "+OK\r\n")
	assert.Equal(t, RespValue{Kind: RespSimpleString, Str: "OK"}, v)
	assert.Equal(t, 5, n)
}

func TestRespParseError(t *testing.T) {
	v, _ := parseAll(t, "-ERR boom\r\n")
	assert.Equal(t, RespError, v.Kind)
	assert.Equal(t, "ERR boom", v.Str)
}

func TestRespParseInteger(t *testing.T) {
	v, _ := parseAll(t, ":42\r\n")
	assert.Equal(t, RespValue{Kind: RespInteger, Int: 42}, v)

	v, _ = parseAll(t, ":-7\r\n")
	assert.Equal(t, int64(-7), v.Int)
}

func TestRespParseBulkString(t *testing.T) {
	v, n := parseAll(t, "$6\r\nfoobar\r\n")
	assert.Equal(t, RespValue{Kind: RespBulkString, Str: "foobar"}, v)
	assert.Equal(t, 12, n)

	v, _ = parseAll(t, "$0\r\n\r\n")
	assert.Equal(t, RespValue{Kind: RespBulkString, Str: ""}, v)

	v, _ = parseAll(t, "$-1\r\n")
	assert.Equal(t, RespNullBulkString, v.Kind)
}

func TestRespParseArray(t *testing.T) {
	v, n := parseAll(t, "*2\r\n$3\r\nfoo\r\n$3\r\nbar\r\n")
	require.Equal(t, RespArray, v.Kind)
	require.Len(t, v.Elems, 2)
	assert.Equal(t, "foo", v.Elems[0].Str)
	assert.Equal(t, "bar", v.Elems[1].Str)
	assert.Equal(t, 22, n)
}

func TestRespParseIncomplete(t *testing.T) {
	var p RespParser
	for _, input := range []string{
		"",
		"+OK",
		"$6\r\nfoo",
		"*2\r\n$3\r\nfoo\r\n",
		"*2\r\n$3\r\nfoo\r\n$3\r\nba",
	} {
		_, n, err := p.Parse([]byte(input))
		require.NoError(t, err, "input %q", input)
		assert.Zero(t, n, "input %q must be incomplete", input)
	}
}

func TestRespParseInvalidMarker(t *testing.T) {
	var p RespParser
	_, _, err := p.Parse([]byte("!bad\r\n"))
	assert.Error(t, err)
}

func TestRespParseOversizeBulkString(t *testing.T) {
	var p RespParser
	_, _, err := p.Parse([]byte("$536870913\r\n")) // 512 MiB + 1
	assert.Error(t, err)

	_, _, err = p.Parse([]byte("$-2\r\n"))
	assert.Error(t, err)
}

func TestRespParseOversizeArray(t *testing.T) {
	var p RespParser
	_, _, err := p.Parse([]byte("*1048577\r\n")) // 1M + 1 elements
	assert.Error(t, err)
}

func TestRespParseNestingDepthLimit(t *testing.T) {
	var p RespParser
	deep := strings.Repeat("*1\r\n", maxArrayDepth+1) + ":1\r\n"
	_, _, err := p.Parse([]byte(deep))
	assert.Error(t, err)
}

func TestRespSerializeRoundTrip(t *testing.T) {
	values := []RespValue{
		{Kind: RespSimpleString, Str: "PONG"},
		{Kind: RespError, Str: "ERR nope"},
		{Kind: RespInteger, Int: -123},
		{Kind: RespBulkString, Str: "hello"},
		{Kind: RespNullBulkString},
		{Kind: RespArray, Elems: []RespValue{
			{Kind: RespInteger, Int: 1},
			{Kind: RespBulkString, Str: "two"},
		}},
	}

	var p RespParser
	for _, in := range values {
		raw := AppendRespValue(nil, in)
		out, n, err := p.Parse(raw)
		require.NoError(t, err)
		require.Equal(t, len(raw), n)
		if in.Kind == RespArray {
			require.Equal(t, RespArray, out.Kind)
			assert.Equal(t, in.Elems, out.Elems)
		} else {
			assert.Equal(t, in, out)
		}
	}
}

func TestRespPipelinedValues(t *testing.T) {
	var p RespParser
	data := []byte("+OK\r\n:1\r\n$2\r\nhi\r\n")

	var kinds []RespKind
	for len(data) > 0 {
		v, n, err := p.Parse(data)
		require.NoError(t, err)
		require.NotZero(t, n)
		kinds = append(kinds, v.Kind)
		data = data[n:]
	}
	assert.Equal(t, []RespKind{RespSimpleString, RespInteger, RespBulkString}, kinds)
}

func BenchmarkRespParseThrottle(b *testing.B) {
	cmd := []byte("*5\r\n$8\r\nTHROTTLE\r\n$8\r\nuser:123\r\n$2\r\n10\r\n$3\r\n100\r\n$2\r\n60\r\n")
	var p RespParser
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _, err := p.Parse(cmd)
		if err != nil {
			b.Fatal(err)
		}
	}
}
