package opac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const withHoldings = `<?xml version="1.0"?>
<searchRetrieveResponse>
  <records><record><recordData>
    <opacRecord>
      <holdings>
        <holding>
          <localLocation>Regenstein</localLocation>
          <shelvingLocation>General Collections</shelvingLocation>
          <callNumber>PS2384 .M6</callNumber>
          <callNumber>2003</callNumber>
          <shelvingData>f</shelvingData>
          <shelvingData>f2</shelvingData>
          <copyNumber>c. 1</copyNumber>
          <receiptAcqStatus>0</receiptAcqStatus>
          <volumes>
            <volume><enumeration>v1</enumeration></volume>
            <volume><enumeration>v2</enumeration></volume>
          </volumes>
          <circulations>
            <circulation><itemId>111</itemId></circulation>
            <circulation><itemId>222</itemId></circulation>
          </circulations>
        </holding>
        <holding>
          <localLocation>Mansueto</localLocation>
          <shelvingLocation>Off-site Storage</shelvingLocation>
          <callNumber>PS2384 .M62</callNumber>
          <shelvingData>g</shelvingData>
          <copyNumber>c. 2</copyNumber>
          <receiptAcqStatus>4</receiptAcqStatus>
          <volumes>
            <volume><enumeration>v3</enumeration></volume>
          </volumes>
          <circulations>
            <circulation><itemId>333</itemId></circulation>
          </circulations>
        </holding>
      </holdings>
    </opacRecord>
  </recordData></record></records>
</searchRetrieveResponse>`

func TestCorrelatePositionalMatch(t *testing.T) {
	data, err := Correlate(withHoldings, "222")
	require.NoError(t, err)
	require.NotNil(t, data)

	assert.Equal(t, "v2", data.VolumeNumber)
	assert.Equal(t, "f2", data.CallNumberPrefix)
}

func TestCorrelateValueKeyedHoldingLookup(t *testing.T) {
	// Item 333 lives in the second holding; its fields must come from there,
	// not from the holding of the first matching index position.
	data, err := Correlate(withHoldings, "333")
	require.NoError(t, err)
	require.NotNil(t, data)

	assert.Equal(t, "v3", data.VolumeNumber)
	assert.Equal(t, "Mansueto", data.LocalLocation)
	assert.Equal(t, "Off-site Storage", data.ShelvingLocation)
	assert.Equal(t, []string{"PS2384 .M62"}, data.CallNumbers)
	assert.Equal(t, []string{"c. 2"}, data.CopyNumbers)
	assert.Equal(t, "4", data.ReceiptAcqStatus)
}

func TestCorrelateMultipleCallNumbers(t *testing.T) {
	data, err := Correlate(withHoldings, "111")
	require.NoError(t, err)
	assert.Equal(t, []string{"PS2384 .M6", "2003"}, data.CallNumbers)
	assert.Equal(t, "Regenstein", data.LocalLocation)
}

func TestCorrelateUnmatchedBarcode(t *testing.T) {
	data, err := Correlate(withHoldings, "999")
	assert.Nil(t, data)
	assert.ErrorIs(t, err, ErrBarcodeNotFound)
}

func TestCorrelateNoCirculations(t *testing.T) {
	doc := `<searchRetrieveResponse><records><record><recordData>
		<opacRecord><holdings/></opacRecord>
	</recordData></record></records></searchRetrieveResponse>`

	data, err := Correlate(doc, "111")
	assert.NoError(t, err)
	assert.Nil(t, data)
}

func TestCorrelateMisalignedVolumes(t *testing.T) {
	doc := `<holdings><holding>
		<volumes><volume><enumeration>v1</enumeration></volume></volumes>
		<circulations>
			<circulation><itemId>111</itemId></circulation>
			<circulation><itemId>222</itemId></circulation>
		</circulations>
	</holding></holdings>`

	_, err := Correlate(doc, "111")
	assert.ErrorIs(t, err, ErrMisaligned)
}

func TestCorrelateAbsentPrefixList(t *testing.T) {
	doc := `<holdings><holding>
		<localLocation>Crerar</localLocation>
		<volumes><volume><enumeration>v1</enumeration></volume></volumes>
		<circulations><circulation><itemId>111</itemId></circulation></circulations>
	</holding></holdings>`

	data, err := Correlate(doc, "111")
	require.NoError(t, err)
	assert.Equal(t, "", data.CallNumberPrefix)
	assert.Equal(t, "v1", data.VolumeNumber)
}

func TestCorrelateMalformedDocument(t *testing.T) {
	_, err := Correlate("<holdings><unclosed", "111")
	assert.Error(t, err)
}
