package shopsite_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/shopsite-adapter/internal/shopsite"
)

func TestDecodeCollection_Products(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		doc      string
		wantSKUs []string
	}{
		{
			name: "many records",
			doc: `<?xml version="1.0" encoding="UTF-8"?>
<Products>
  <Product><Name>Widget</Name><SKU>W-1</SKU><Price>9.99</Price><Taxable>checked</Taxable></Product>
  <Product><Name>Gadget</Name><SKU>G-1</SKU><Price>19.99</Price></Product>
</Products>`,
			wantSKUs: []string{"W-1", "G-1"},
		},
		{
			name:     "one-element collection",
			doc:      `<Products><Product><Name>Widget</Name><SKU>W-1</SKU></Product></Products>`,
			wantSKUs: []string{"W-1"},
		},
		{
			name:     "bare single record",
			doc:      `<Products><Name>Widget</Name><SKU>W-1</SKU></Products>`,
			wantSKUs: []string{"W-1"},
		},
		{
			name:     "root nested in an envelope",
			doc:      `<ShopSite><Response><ResponseCode>1</ResponseCode></Response><Products><Product><SKU>X</SKU></Product></Products></ShopSite>`,
			wantSKUs: []string{"X"},
		},
		{
			name:     "root without children",
			doc:      `<Products></Products>`,
			wantSKUs: []string{},
		},
		{
			name:     "root absent",
			doc:      `<Orders><Order><OrderID>1</OrderID></Order></Orders>`,
			wantSKUs: []string{},
		},
		{
			name:     "empty body",
			doc:      ``,
			wantSKUs: []string{},
		},
		{
			name:     "non-record siblings ignored when records present",
			doc:      `<Products><Count>2</Count><Product><SKU>A</SKU></Product><Product><SKU>B</SKU></Product></Products>`,
			wantSKUs: []string{"A", "B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := shopsite.DecodeCollection[shopsite.Product](
				strings.NewReader(tt.doc), "Products", "Product",
			)
			require.NoError(t, err)
			require.NotNil(t, got)

			skus := make([]string, 0, len(got))
			for _, p := range got {
				skus = append(skus, p.SKU)
			}
			assert.Equal(t, tt.wantSKUs, skus)
		})
	}
}

func TestDecodeCollection_SingleEqualsOneElement(t *testing.T) {
	t.Parallel()

	bare := `<Products><Name>Widget</Name><SKU>W-1</SKU><Price>9.99</Price><Taxable>checked</Taxable></Products>`
	wrapped := `<Products><Product><Name>Widget</Name><SKU>W-1</SKU><Price>9.99</Price><Taxable>checked</Taxable></Product></Products>`

	a, err := shopsite.DecodeCollection[shopsite.Product](strings.NewReader(bare), "Products", "Product")
	require.NoError(t, err)
	b, err := shopsite.DecodeCollection[shopsite.Product](strings.NewReader(wrapped), "Products", "Product")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, []shopsite.Product{{
		Name:    "Widget",
		SKU:     "W-1",
		Price:   "9.99",
		Taxable: "checked",
	}}, a)
}

func TestDecodeCollection_Orders(t *testing.T) {
	t.Parallel()

	doc := `<Orders>
  <Order>
    <OrderID>1001</OrderID>
    <OrderDate>2026-10-01</OrderDate>
    <BillingAddress><FirstName>Ada</FirstName><LastName>Lovelace</LastName><Email>ada@example.com</Email></BillingAddress>
    <ShippingAddress><City>London</City><Country>UK</Country></ShippingAddress>
    <Items>
      <Item><Name>Widget</Name><SKU>W-1</SKU><Quantity>2</Quantity><Price>9.99</Price></Item>
      <Item><Name>Gadget</Name><SKU>G-1</SKU><Quantity>1</Quantity><Price>19.99</Price></Item>
    </Items>
    <Total>39.97</Total>
  </Order>
</Orders>`

	orders, err := shopsite.DecodeCollection[shopsite.Order](strings.NewReader(doc), "Orders", "Order")
	require.NoError(t, err)
	require.Len(t, orders, 1)

	o := orders[0]
	assert.Equal(t, "1001", o.OrderID)
	assert.Equal(t, "Ada", o.BillingAddress.FirstName)
	assert.Equal(t, "ada@example.com", o.BillingAddress.Email)
	assert.Equal(t, "London", o.ShippingAddress.City)
	require.Len(t, o.Items, 2)
	assert.Equal(t, "G-1", o.Items[1].SKU)
	assert.Equal(t, "39.97", o.Total)
}

func TestDecodeCollection_EscapedText(t *testing.T) {
	t.Parallel()

	doc := `<Products><Product><Name>Salt &amp; Pepper</Name><SKU>SP&lt;1&gt;</SKU></Product></Products>`

	got, err := shopsite.DecodeCollection[shopsite.Product](strings.NewReader(doc), "Products", "Product")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Salt & Pepper", got[0].Name)
	assert.Equal(t, "SP<1>", got[0].SKU)
}

func TestDecodeCollection_Latin1(t *testing.T) {
	t.Parallel()

	var doc bytes.Buffer
	doc.WriteString(`<?xml version="1.0" encoding="ISO-8859-1"?><Products><Product><Name>Caf`)
	doc.WriteByte(0xe9) // é in ISO-8859-1
	doc.WriteString(`</Name><SKU>C-1</SKU></Product></Products>`)

	got, err := shopsite.DecodeCollection[shopsite.Product](&doc, "Products", "Product")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Café", got[0].Name)
}

func TestDecodeCollection_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{name: "mismatched tags", doc: `<Products><Product><SKU>A</Product></Products>`},
		{name: "truncated", doc: `<Products><Product><SKU>A</SKU>`},
		{name: "garbage before root", doc: `<<<>>>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := shopsite.DecodeCollection[shopsite.Product](
				strings.NewReader(tt.doc), "Products", "Product",
			)
			require.Error(t, err)
			assert.ErrorIs(t, err, shopsite.ErrMalformedResponse)
			assert.Nil(t, got)
		})
	}
}
