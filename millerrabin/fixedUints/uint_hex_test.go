package fixedUints

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/GottfriedHerold/MillerRabin/internal/testutils"
)

func TestHexRoundtrip(t *testing.T) {
	runForWidths(t, "HexRoundtrip", testHexRoundtrip[Words1], testHexRoundtrip[Words2], testHexRoundtrip[Words3], testHexRoundtrip[Words4], testHexRoundtrip[Words16])
}

func testHexRoundtrip[W WordArray](t *testing.T) {
	for _, x := range getSamples[W](10, 200) {
		hex := x.ToHex()
		testutils.FatalUnless(t, len(hex) == 16*x.WordCount(), "ToHex output %v has wrong length", hex)
		back, err := FromHex[W](hex)
		testutils.FatalUnless(t, err == nil, "FromHex failed on %v: %v", hex, err)
		testutils.FatalUnless(t, back.IsEqual(&x), "hex roundtrip failed for %v", hex)

		back, err = FromHex[W](x.String())
		testutils.FatalUnless(t, err == nil && back.IsEqual(&x), "roundtrip via String failed for %v", x)
		back, err = FromHex[W](strings.ToUpper(hex))
		testutils.FatalUnless(t, err == nil && back.IsEqual(&x), "uppercase roundtrip failed for %v", hex)
		testutils.FatalUnless(t, x.ToBigInt().Text(16) == strings.TrimLeft(hex, "0") || x.IsZero(), "ToHex disagrees with big.Int for %v", hex)
	}
}

func TestFromHex(t *testing.T) {
	x, err := FromHex[Words2]("0x0123456789abcdef_FEDCBA9876543210")
	testutils.FatalUnless(t, err == nil, "unexpected error %v", err)
	testutils.FatalUnless(t, x.Word(1) == 0x0123456789abcdef && x.Word(0) == 0xfedcba9876543210, "wrong words %x", x)

	y := MustFromHex[Words1]("ABCDEF")
	testutils.FatalUnless(t, y.Word(0) == 0xabcdef, "uppercase digits decoded as %x", y)
	y = MustFromHex[Words1]("0XaBcDeF")
	testutils.FatalUnless(t, y.Word(0) == 0xabcdef, "mixed case digits decoded as %x", y)

	// excess high-order digits are dropped
	y = MustFromHex[Words1]("1_0000000000000002")
	testutils.FatalUnless(t, y.Word(0) == 2, "over-long input not truncated: %x", y)
	z := MustFromHex[Words2]("ffff0000000000000001" + "0000000000000002")
	testutils.FatalUnless(t, z.Word(1) == 1 && z.Word(0) == 2, "over-long input not truncated: %x", z)

	y = MustFromHex[Words1]("00000000000000000000000000000007")
	testutils.FatalUnless(t, y.Word(0) == 7, "leading zeros not accepted")
}

func TestFromHexErrors(t *testing.T) {
	invalid := []string{"12g4", "0x", "", "-1", "0x12 ", "1__2", "_12", "12_", "0y12", "１２"}
	for _, s := range invalid {
		_, err := FromHex[Words4](s)
		testutils.FatalUnless(t, err != nil, "FromHex accepted invalid input %q", s)
		testutils.FatalUnless(t, errors.Is(err, ErrInvalidHexDigit) || errors.Is(err, ErrEmptyHexString), "unexpected error type for %q: %v", s, err)
	}
	_, err := FromHex[Words4]("")
	testutils.FatalUnless(t, errors.Is(err, ErrEmptyHexString), "empty input did not give ErrEmptyHexString: %v", err)
	_, err = FromHex[Words4]("12g4")
	testutils.FatalUnless(t, errors.Is(err, ErrInvalidHexDigit), "invalid digit did not give ErrInvalidHexDigit: %v", err)
	testutils.FatalUnless(t, strings.Contains(err.Error(), "offset 2"), "error message lacks position: %v", err)

	z := MustFromHex[Words4]("5")
	testutils.FatalUnless(t, z.SetHex("xyz") != nil, "SetHex accepted invalid input")
	testutils.FatalUnless(t, z.Word(0) == 5, "failing SetHex modified the receiver")
	testutils.FatalUnless(t, testutils.CheckPanic(func() { MustFromHex[Words4]("xyz") }), "MustFromHex did not panic")
}

func TestFormat(t *testing.T) {
	x := FromWord[Words2](255)
	testutils.FatalUnless(t, x.String() == "0x000000000000000000000000000000ff", "String gave %v", x.String())
	testutils.FatalUnless(t, fmt.Sprint(x) == x.String(), "Sprint gave %v", fmt.Sprint(x))
	testutils.FatalUnless(t, fmt.Sprintf("%v", &x) == x.String(), "%%v on pointer gave %v", fmt.Sprintf("%v", &x))
	testutils.FatalUnless(t, fmt.Sprintf("%d", x) == "255", "%%d gave %v", fmt.Sprintf("%d", x))
	testutils.FatalUnless(t, fmt.Sprintf("%x", x) == x.ToHex(), "%%x gave %v", fmt.Sprintf("%x", x))
	testutils.FatalUnless(t, fmt.Sprintf("%#X", x) == "0x000000000000000000000000000000FF", "%%#X gave %v", fmt.Sprintf("%#X", x))
}
