package decode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var cgaMap = AddressMap{
	{Address: 0xB8000, Label: "CGA RAM"},
	{Address: 0xB9000, Label: "CGA RAM"},
	{Address: 0xBA000, Label: "CGA RAM"},
	{Address: 0xBB000, Label: "CGA RAM"},
}

func TestSelects(t *testing.T) {
	assert := assert.New(t)

	rp := NewReporter(32)

	sels := rp.Selects(cgaMap)
	assert.Len(sels, 1)

	sel := sels[0]
	assert.Equal("CGA RAM", sel.Label)
	assert.Equal(uint32(0xB8000), sel.Match)
	assert.Equal(uint32(0xFFFFCFFF), sel.Mask)

	for _, entry := range cgaMap {
		assert.True(sel.Test(entry.Address), entry.Label)
	}
	assert.False(sel.Test(0xB0000))
	assert.False(sel.Test(0xBC000))
}

func TestSelectsDuplicateLabels(t *testing.T) {
	assert := assert.New(t)

	pv7 := AddressMap{
		{Address: 0x8000, Label: "slot 0-2, first 8k"},
		{Address: 0xa000, Label: "slot 0-2, second 8k"},
		{Address: 0xc000, Label: "slot 0-3, first 8k"},
		{Address: 0xe000, Label: "slot 0-2, second 8k"},
		{Address: 0xffff, Label: "memory top"},
	}

	rp := &Reporter{Width: 20, Lines: 21}

	sels := rp.Selects(pv7)
	assert.Len(sels, 4)

	assert.Equal("slot 0-2, first 8k", sels[0].Label)
	assert.Equal("slot 0-2, second 8k", sels[1].Label)
	assert.Equal("slot 0-3, first 8k", sels[2].Label)
	assert.Equal("memory top", sels[3].Label)

	// 0xa000 and 0xe000 share a label; A14 becomes a don't-care line.
	second := sels[1]
	assert.Equal(uint32(0x1FBFFF), second.Mask)
	assert.Equal(uint32(0xa000), second.Match)
	assert.True(second.Test(0xa000))
	assert.True(second.Test(0xe000))
	assert.False(second.Test(0x8000))
}

func TestCare(t *testing.T) {
	assert := assert.New(t)

	sel := Select{Label: "CGA RAM", Match: 0xB8000, Mask: 0xFFFFCFFF}

	assert.Equal(CARE_HIGH, sel.Care(19))
	assert.Equal(CARE_HIGH, sel.Care(15))
	assert.Equal(CARE_LOW, sel.Care(14))
	assert.Equal(CARE_ANY, sel.Care(13))
	assert.Equal(CARE_ANY, sel.Care(12))
	assert.Equal(CARE_LOW, sel.Care(0))
	assert.Equal(CARE_ANY, sel.Care(-1))
	assert.Equal(CARE_ANY, sel.Care(32))

	assert.Equal("0", CARE_LOW.String())
	assert.Equal("1", CARE_HIGH.String())
	assert.Equal("x", CARE_ANY.String())
}

func TestPattern(t *testing.T) {
	assert := assert.New(t)

	rp := NewReporter(32)
	sels := rp.Selects(cgaMap)
	assert.Len(sels, 1)
	assert.Equal("000000000000101110xx000000000000", rp.Pattern(sels[0]))

	rp20 := NewReporter(20)
	sels = rp20.Selects(cgaMap)
	assert.Len(sels, 1)
	assert.Equal("101110xx000000000000", rp20.Pattern(sels[0]))

	// Unscanned display columns render as don't-care.
	rp8 := &Reporter{Width: 8, Lines: 4}
	sel := Select{Match: 0b0101, Mask: 0b1111}
	assert.Equal("xxxx0101", rp8.Pattern(sel))
}

func TestSelectReport(t *testing.T) {
	assert := assert.New(t)

	rp := NewReporter(32)

	buf := &bytes.Buffer{}
	err := rp.SelectReport(buf, "Memory Decode:", cgaMap)
	assert.NoError(err)

	expected := []string{
		"Memory Decode:",
		"000000000000101110xx000000000000 CGA RAM",
		" lines tested: A0, A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A14, A15, A16, A17, A18, A19, A20, A21, A22, A23, A24, A25, A26, A27, A28, A29, A30, A31",
	}

	assert.Equal(strings.Join(expected, "\n")+"\n", buf.String())
}

func TestSelectReportEmpty(t *testing.T) {
	assert := assert.New(t)

	rp := NewReporter(32)

	buf := &bytes.Buffer{}
	err := rp.SelectReport(buf, "I/O Decode:", AddressMap{})
	assert.NoError(err)
	assert.Equal("I/O Decode:\n", buf.String())
}
