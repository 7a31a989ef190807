package order_test

import (
	"testing"
	"time"

	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/bom"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/kernel"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper functions.
func money(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	return kernel.NewMoneyFromFloat(amount)
}

func createValidOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		"SO0042",
		"Dupont SARL",
		"EUR",
		time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	require.NotNil(t, o)
	return o
}

func createProductLine(t *testing.T, quantity, unitPrice, unitCost float64) *order.Line {
	t.Helper()
	line, err := order.NewLine(
		kernel.NewUUID(),
		kernel.NewUUID(),
		false,
		"Oak plank",
		quantity,
		money(t, unitPrice),
		money(t, unitCost),
		0,
	)
	require.NoError(t, err)
	return line
}

func createCompositeLine(t *testing.T, quantity float64) *order.Line {
	t.Helper()
	line, err := order.NewLine(
		kernel.NewUUID(),
		kernel.NewUUID(),
		true,
		"Kitchen installation",
		quantity,
		kernel.ZeroMoney(),
		kernel.ZeroMoney(),
		0,
	)
	require.NoError(t, err)
	return line
}

// createTemplateFor builds a two-component template bound to the given
// composite line's product: component A ×2 and component B ×1 per unit.
func createTemplateFor(t *testing.T, composite *order.Line) (*bom.Template, kernel.UUID, kernel.UUID) {
	t.Helper()
	componentA := kernel.NewUUID()
	componentB := kernel.NewUUID()

	template, err := bom.NewTemplate(kernel.NewUUID(), composite.ProductID(), "KIT-STD", 1)
	require.NoError(t, err)

	lineA, err := bom.NewTemplateLine(componentA, false, 2)
	require.NoError(t, err)
	require.NoError(t, template.AddLine(lineA))

	lineB, err := bom.NewTemplateLine(componentB, false, 1)
	require.NoError(t, err)
	require.NoError(t, template.AddLine(lineB))

	return template, componentA, componentB
}

func seedsFor(t *testing.T, componentA, componentB kernel.UUID) map[kernel.UUID]order.ComponentSeed {
	t.Helper()
	return map[kernel.UUID]order.ComponentSeed{
		componentA: {Name: "Hinge", ListPrice: money(t, 10), StandardCost: money(t, 4)},
		componentB: {Name: "Panel", ListPrice: money(t, 50), StandardCost: money(t, 30)},
	}
}

// explodedOrder builds an order with one exploded composite line (qty 1,
// components ×2 and ×1) and returns the order and the composite line.
func explodedOrder(t *testing.T) (*order.Order, *order.Line) {
	t.Helper()
	o := createValidOrder(t)
	composite := createCompositeLine(t, 1)
	require.NoError(t, o.AddLine(composite))

	template, componentA, componentB := createTemplateFor(t, composite)
	require.NoError(t, o.ExplodeLine(composite.ID(), template, seedsFor(t, componentA, componentB)))
	return o, composite
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	validDate := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("should create order with valid parameters", func(t *testing.T) {
		o, err := order.NewOrder(validID, "SO0042", "Dupont SARL", "EUR", validDate)

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.Equal(t, "SO0042", o.Reference())
		assert.Equal(t, "Dupont SARL", o.CustomerName())
		assert.Equal(t, "EUR", o.Currency())
		assert.Equal(t, validDate, o.PlacedAt())
		assert.Equal(t, order.Draft, o.Status())
		assert.Empty(t, o.Lines())
	})

	t.Run("should return error for invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, "SO0042", "Dupont SARL", "EUR", validDate)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should return error for empty reference", func(t *testing.T) {
		o, err := order.NewOrder(validID, "", "Dupont SARL", "EUR", validDate)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "order reference")
	})

	t.Run("should return error for empty customer name", func(t *testing.T) {
		o, err := order.NewOrder(validID, "SO0042", "", "EUR", validDate)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "customer name")
	})

	t.Run("should return error for empty currency", func(t *testing.T) {
		o, err := order.NewOrder(validID, "SO0042", "Dupont SARL", "", validDate)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should return error for zero date", func(t *testing.T) {
		o, err := order.NewOrder(validID, "SO0042", "Dupont SARL", "EUR", time.Time{})

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestOrderValidate(t *testing.T) {
	t.Run("should fail for zero value order", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})

	t.Run("should fail for nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

func TestOrderAddLine(t *testing.T) {
	t.Run("should add root line", func(t *testing.T) {
		o := createValidOrder(t)
		line := createProductLine(t, 2, 100, 60)

		err := o.AddLine(line)

		require.NoError(t, err)
		assert.Len(t, o.Lines(), 1)

		found, err := o.Line(line.ID())
		require.NoError(t, err)
		assert.True(t, found.IsEqual(line))
	})

	t.Run("should reject duplicate line ID", func(t *testing.T) {
		o := createValidOrder(t)
		line := createProductLine(t, 1, 10, 5)
		require.NoError(t, o.AddLine(line))

		err := o.AddLine(line)

		assert.ErrorIs(t, err, order.ErrLineAlreadyExists)
	})

	t.Run("should reject unconstructed line", func(t *testing.T) {
		o := createValidOrder(t)

		err := o.AddLine(&order.Line{})

		assert.ErrorIs(t, err, order.ErrLineIsNotConstructed)
	})

	t.Run("should compute margin on add", func(t *testing.T) {
		o := createValidOrder(t)
		line := createProductLine(t, 2, 100, 60)

		require.NoError(t, o.AddLine(line))

		// subtotal 200, cost 120
		assert.True(t, line.Margin().IsEqual(money(t, 80)))
		assert.InDelta(t, 40, line.MarginPct(), 0.0001)
	})
}

func TestOrderExplodeLine(t *testing.T) {
	t.Run("should create one component per template line", func(t *testing.T) {
		o, composite := explodedOrder(t)

		children := o.Children(composite.ID())
		assert.Len(t, children, 2)
		assert.Len(t, o.Lines(), 3)
	})

	t.Run("should scale component quantities by parent quantity", func(t *testing.T) {
		o := createValidOrder(t)
		composite := createCompositeLine(t, 3)
		require.NoError(t, o.AddLine(composite))
		template, componentA, componentB := createTemplateFor(t, composite)

		require.NoError(t, o.ExplodeLine(composite.ID(), template, seedsFor(t, componentA, componentB)))

		children := o.Children(composite.ID())
		require.Len(t, children, 2)
		assert.InDelta(t, 6, children[0].Quantity(), 0.0001)
		assert.InDelta(t, 3, children[1].Quantity(), 0.0001)
	})

	t.Run("should mark components with description prefix", func(t *testing.T) {
		o, composite := explodedOrder(t)

		for _, child := range o.Children(composite.ID()) {
			assert.True(t, child.IsComponent())
			assert.Contains(t, child.Description(), "> ")
		}
	})

	t.Run("should bind template and inherit display flags", func(t *testing.T) {
		o := createValidOrder(t)
		composite := createCompositeLine(t, 1)
		require.NoError(t, o.AddLine(composite))
		template, componentA, componentB := createTemplateFor(t, composite)
		template.SetDisplayDefaults(true, true)

		require.NoError(t, o.ExplodeLine(composite.ID(), template, seedsFor(t, componentA, componentB)))

		require.NotNil(t, composite.BomTemplateID())
		assert.True(t, composite.BomTemplateID().IsEqual(template.ID()))
		assert.True(t, composite.HidePrices())
		assert.True(t, composite.HideStructure())
	})

	t.Run("should seed composite price from component catalog prices", func(t *testing.T) {
		o, composite := explodedOrder(t)
		_ = o

		// 2×10 + 1×50 per unit
		assert.True(t, composite.UnitPrice().IsEqual(money(t, 70)))
		assert.True(t, composite.UnitCost().IsEqual(money(t, 38)))
	})

	t.Run("should price components from seeds", func(t *testing.T) {
		o, composite := explodedOrder(t)

		children := o.Children(composite.ID())
		require.Len(t, children, 2)
		assert.True(t, children[0].UnitPrice().IsEqual(money(t, 10)))
		assert.True(t, children[0].UnitCost().IsEqual(money(t, 4)))
		assert.True(t, children[1].UnitPrice().IsEqual(money(t, 50)))
	})

	t.Run("should keep components grouped after their parent", func(t *testing.T) {
		o := createValidOrder(t)
		before := createProductLine(t, 1, 5, 2)
		composite := createCompositeLine(t, 1)
		after := createProductLine(t, 1, 7, 3)
		require.NoError(t, o.AddLine(before))
		require.NoError(t, o.AddLine(composite))
		require.NoError(t, o.AddLine(after))
		template, componentA, componentB := createTemplateFor(t, composite)

		require.NoError(t, o.ExplodeLine(composite.ID(), template, seedsFor(t, componentA, componentB)))

		lines := o.Lines()
		require.Len(t, lines, 5)
		assert.True(t, lines[0].IsEqual(before))
		assert.True(t, lines[1].IsEqual(composite))
		assert.True(t, lines[2].IsComponent())
		assert.True(t, lines[3].IsComponent())
		assert.True(t, lines[4].IsEqual(after))
	})

	t.Run("should be a no-op for nil template", func(t *testing.T) {
		o := createValidOrder(t)
		composite := createCompositeLine(t, 1)
		require.NoError(t, o.AddLine(composite))

		err := o.ExplodeLine(composite.ID(), nil, nil)

		require.NoError(t, err)
		assert.Len(t, o.Lines(), 1)
		assert.Nil(t, composite.BomTemplateID())
	})

	t.Run("should reject non-composite line", func(t *testing.T) {
		o := createValidOrder(t)
		line := createProductLine(t, 1, 10, 5)
		require.NoError(t, o.AddLine(line))
		template, componentA, componentB := createTemplateFor(t, line)

		err := o.ExplodeLine(line.ID(), template, seedsFor(t, componentA, componentB))

		require.Error(t, err)
		assert.Empty(t, o.Children(line.ID()))
	})

	t.Run("should return error for unknown line", func(t *testing.T) {
		o := createValidOrder(t)
		template, componentA, componentB := createTemplateFor(t, createCompositeLine(t, 1))

		err := o.ExplodeLine(kernel.NewUUID(), template, seedsFor(t, componentA, componentB))

		require.Error(t, err)
	})
}

func TestOrderUpdateLineQuantity(t *testing.T) {
	t.Run("should rescale components proportionally", func(t *testing.T) {
		o, composite := explodedOrder(t)

		err := o.UpdateLineQuantity(composite.ID(), 2)

		require.NoError(t, err)
		children := o.Children(composite.ID())
		require.Len(t, children, 2)
		assert.InDelta(t, 4, children[0].Quantity(), 0.0001)
		assert.InDelta(t, 2, children[1].Quantity(), 0.0001)
	})

	t.Run("should round-trip to original quantities", func(t *testing.T) {
		o, composite := explodedOrder(t)

		require.NoError(t, o.UpdateLineQuantity(composite.ID(), 2))
		require.NoError(t, o.UpdateLineQuantity(composite.ID(), 1))

		children := o.Children(composite.ID())
		require.Len(t, children, 2)
		assert.InDelta(t, 2, children[0].Quantity(), 0.0001)
		assert.InDelta(t, 1, children[1].Quantity(), 0.0001)
	})

	t.Run("should preserve component pricing overrides across rescale", func(t *testing.T) {
		o, composite := explodedOrder(t)
		children := o.Children(composite.ID())
		require.NoError(t, o.UpdateLinePricing(children[0].ID(), money(t, 99), money(t, 44), 10))

		require.NoError(t, o.UpdateLineQuantity(composite.ID(), 5))

		children = o.Children(composite.ID())
		assert.True(t, children[0].UnitPrice().IsEqual(money(t, 99)))
		assert.True(t, children[0].UnitCost().IsEqual(money(t, 44)))
		assert.InDelta(t, 10, children[0].DiscountPct(), 0.0001)
	})

	t.Run("should not rescale when old quantity is zero", func(t *testing.T) {
		o, composite := explodedOrder(t)
		require.NoError(t, o.UpdateLineQuantity(composite.ID(), 0))
		childQty := o.Children(composite.ID())[0].Quantity()

		require.NoError(t, o.UpdateLineQuantity(composite.ID(), 4))

		assert.InDelta(t, childQty, o.Children(composite.ID())[0].Quantity(), 0.0001)
	})

	t.Run("should reject negative quantity", func(t *testing.T) {
		o := createValidOrder(t)
		line := createProductLine(t, 1, 10, 5)
		require.NoError(t, o.AddLine(line))

		err := o.UpdateLineQuantity(line.ID(), -1)

		require.Error(t, err)
		assert.InDelta(t, 1, line.Quantity(), 0.0001)
	})

	t.Run("should return error for unknown line", func(t *testing.T) {
		o := createValidOrder(t)

		err := o.UpdateLineQuantity(kernel.NewUUID(), 2)

		require.Error(t, err)
	})
}

func TestOrderUpdateLinePricing(t *testing.T) {
	t.Run("should rewrite pricing and recompute margin", func(t *testing.T) {
		o := createValidOrder(t)
		line := createProductLine(t, 2, 100, 60)
		require.NoError(t, o.AddLine(line))

		err := o.UpdateLinePricing(line.ID(), money(t, 150), money(t, 90), 0)

		require.NoError(t, err)
		assert.True(t, line.Subtotal().IsEqual(money(t, 300)))
		assert.True(t, line.Margin().IsEqual(money(t, 120)))
	})

	t.Run("should apply discount to subtotal", func(t *testing.T) {
		o := createValidOrder(t)
		line := createProductLine(t, 1, 100, 0)
		require.NoError(t, o.AddLine(line))

		err := o.UpdateLinePricing(line.ID(), money(t, 100), kernel.ZeroMoney(), 25)

		require.NoError(t, err)
		assert.True(t, line.Subtotal().IsEqual(money(t, 75)))
	})

	t.Run("should reject discount outside 0..100", func(t *testing.T) {
		o := createValidOrder(t)
		line := createProductLine(t, 1, 100, 0)
		require.NoError(t, o.AddLine(line))

		err := o.UpdateLinePricing(line.ID(), money(t, 100), kernel.ZeroMoney(), 120)

		require.Error(t, err)
	})

	t.Run("should recompute parent margin when component cost changes", func(t *testing.T) {
		o, composite := explodedOrder(t)
		require.NoError(t, o.UpdateLinePricing(composite.ID(), money(t, 100), composite.UnitCost(), 0))
		child := o.Children(composite.ID())[0]

		require.NoError(t, o.UpdateLinePricing(child.ID(), child.UnitPrice(), money(t, 10), 0))

		// subtotal 100, child costs: 2×10 + 1×30
		assert.True(t, composite.Margin().IsEqual(money(t, 50)))
	})
}

func TestOrderCompositeMargin(t *testing.T) {
	t.Run("should use summed component costs instead of own cost", func(t *testing.T) {
		o, composite := explodedOrder(t)
		require.NoError(t, o.UpdateLinePricing(composite.ID(), money(t, 100), money(t, 999), 0))

		// own cost 999 is ignored: child costs are 2×4 + 1×30 = 38
		assert.True(t, composite.Margin().IsEqual(money(t, 62)))
		assert.InDelta(t, 62, composite.MarginPct(), 0.0001)
	})

	t.Run("should report zero margin pct on zero subtotal", func(t *testing.T) {
		o := createValidOrder(t)
		composite := createCompositeLine(t, 1)
		require.NoError(t, o.AddLine(composite))

		assert.InDelta(t, 0, composite.MarginPct(), 0.0001)
	})
}

func TestOrderRemoveLine(t *testing.T) {
	t.Run("should cascade from composite to components", func(t *testing.T) {
		o, composite := explodedOrder(t)

		err := o.RemoveLine(composite.ID())

		require.NoError(t, err)
		assert.Empty(t, o.Lines())
	})

	t.Run("should recompute parent margin when component removed", func(t *testing.T) {
		o, composite := explodedOrder(t)
		require.NoError(t, o.UpdateLinePricing(composite.ID(), money(t, 100), kernel.ZeroMoney(), 0))
		children := o.Children(composite.ID())

		// drop the Panel component (cost 30)
		err := o.RemoveLine(children[1].ID())

		require.NoError(t, err)
		assert.Len(t, o.Children(composite.ID()), 1)
		// remaining child cost: 2×4
		assert.True(t, composite.Margin().IsEqual(money(t, 92)))
	})

	t.Run("should not touch sibling lines", func(t *testing.T) {
		o, composite := explodedOrder(t)
		sibling := createProductLine(t, 1, 10, 5)
		require.NoError(t, o.AddLine(sibling))

		require.NoError(t, o.RemoveLine(composite.ID()))

		require.Len(t, o.Lines(), 1)
		assert.True(t, o.Lines()[0].IsEqual(sibling))
	})

	t.Run("should return error for unknown line", func(t *testing.T) {
		o := createValidOrder(t)

		err := o.RemoveLine(kernel.NewUUID())

		require.Error(t, err)
	})
}

func TestOrderConfigureComposite(t *testing.T) {
	newConfiguration := func(t *testing.T, templateID *kernel.UUID) order.CompositeConfiguration {
		t.Helper()
		return order.CompositeConfiguration{
			Quantity:      2,
			HidePrices:    true,
			HideStructure: false,
			BomTemplateID: templateID,
			Components: []order.ComponentSpec{
				{
					ProductID: kernel.NewUUID(),
					Name:      "Custom hinge",
					Quantity:  8,
					UnitPrice: money(t, 12),
					UnitCost:  money(t, 6),
				},
			},
		}
	}

	t.Run("should destructively replace the component set", func(t *testing.T) {
		o, composite := explodedOrder(t)
		originalChildren := o.Children(composite.ID())
		require.Len(t, originalChildren, 2)

		err := o.ConfigureComposite(composite.ID(), newConfiguration(t, nil))

		require.NoError(t, err)
		children := o.Children(composite.ID())
		require.Len(t, children, 1)
		assert.Equal(t, "> Custom hinge", children[0].Description())
		assert.InDelta(t, 8, children[0].Quantity(), 0.0001)
		for _, old := range originalChildren {
			_, err = o.Line(old.ID())
			assert.Error(t, err)
		}
	})

	t.Run("should rewrite quantity, flags and template reference", func(t *testing.T) {
		o, composite := explodedOrder(t)
		templateID := kernel.NewUUID()
		cfg := newConfiguration(t, &templateID)

		require.NoError(t, o.ConfigureComposite(composite.ID(), cfg))

		assert.InDelta(t, 2, composite.Quantity(), 0.0001)
		assert.True(t, composite.HidePrices())
		assert.False(t, composite.HideStructure())
		require.NotNil(t, composite.BomTemplateID())
		assert.True(t, composite.BomTemplateID().IsEqual(templateID))
	})

	t.Run("should reject composite component rows", func(t *testing.T) {
		o, composite := explodedOrder(t)
		cfg := newConfiguration(t, nil)
		cfg.Components[0].ProductIsComposite = true

		err := o.ConfigureComposite(composite.ID(), cfg)

		assert.ErrorIs(t, err, order.ErrNestedComposite)
		// nothing was modified
		assert.Len(t, o.Children(composite.ID()), 2)
		assert.InDelta(t, 1, composite.Quantity(), 0.0001)
	})

	t.Run("should reject non-composite target", func(t *testing.T) {
		o := createValidOrder(t)
		line := createProductLine(t, 1, 10, 5)
		require.NoError(t, o.AddLine(line))

		err := o.ConfigureComposite(line.ID(), newConfiguration(t, nil))

		assert.ErrorIs(t, err, order.ErrParentNotComposite)
	})
}

func TestOrderConfirm(t *testing.T) {
	t.Run("should transition draft to confirmed", func(t *testing.T) {
		o := createValidOrder(t)

		err := o.Confirm()

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, o.Status())
	})

	t.Run("should reject confirming twice", func(t *testing.T) {
		o := createValidOrder(t)
		require.NoError(t, o.Confirm())

		err := o.Confirm()

		require.Error(t, err)
		assert.Equal(t, order.Confirmed, o.Status())
	})
}

func TestOrderTaxableLines(t *testing.T) {
	t.Run("should exclude composite lines and include their components", func(t *testing.T) {
		o, composite := explodedOrder(t)
		plain := createProductLine(t, 1, 10, 5)
		require.NoError(t, o.AddLine(plain))

		taxable := o.TaxableLines()

		require.Len(t, taxable, 3)
		for _, line := range taxable {
			assert.False(t, line.IsEqual(composite))
		}
	})

	t.Run("should exclude display lines", func(t *testing.T) {
		o := createValidOrder(t)
		section, err := order.NewDisplayLine(kernel.NewUUID(), order.DisplaySection, "Ground floor")
		require.NoError(t, err)
		require.NoError(t, o.AddLine(section))
		plain := createProductLine(t, 1, 10, 5)
		require.NoError(t, o.AddLine(plain))

		taxable := o.TaxableLines()

		require.Len(t, taxable, 1)
		assert.True(t, taxable[0].IsEqual(plain))
	})

	t.Run("should exclude an inert composite entirely", func(t *testing.T) {
		o := createValidOrder(t)
		composite := createCompositeLine(t, 1)
		require.NoError(t, o.AddLine(composite))

		assert.Empty(t, o.TaxableLines())
	})
}

func TestOrderRebindTemplate(t *testing.T) {
	t.Run("should point the line at the new template", func(t *testing.T) {
		o, composite := explodedOrder(t)
		snapshotID := kernel.NewUUID()

		err := o.RebindTemplate(composite.ID(), snapshotID)

		require.NoError(t, err)
		require.NotNil(t, composite.BomTemplateID())
		assert.True(t, composite.BomTemplateID().IsEqual(snapshotID))
	})

	t.Run("should reject invalid template ID", func(t *testing.T) {
		o, composite := explodedOrder(t)
		var invalidID kernel.UUID

		err := o.RebindTemplate(composite.ID(), invalidID)

		require.Error(t, err)
	})
}

func TestRestoreOrder(t *testing.T) {
	placedAt := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("should restore order with lines and recompute margins", func(t *testing.T) {
		parentID := kernel.NewUUID()
		templateID := kernel.NewUUID()
		parent, err := order.RestoreLine(
			parentID, kernel.NewUUID(), true, "Kitchen installation", order.DisplayProduct,
			1, money(t, 100), kernel.ZeroMoney(), 0,
			nil, &templateID, false, false,
		)
		require.NoError(t, err)
		child, err := order.RestoreLine(
			kernel.NewUUID(), kernel.NewUUID(), false, "> Panel", order.DisplayProduct,
			2, money(t, 50), money(t, 30), 0,
			&parentID, nil, false, false,
		)
		require.NoError(t, err)

		o, err := order.RestoreOrder(
			kernel.NewUUID(), "SO0042", "Dupont SARL", "EUR", placedAt,
			order.Confirmed, []*order.Line{parent, child},
		)

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, o.Status())
		require.Len(t, o.Lines(), 2)
		// composite margin: 100 − 2×30
		assert.True(t, parent.Margin().IsEqual(money(t, 40)))
	})

	t.Run("should reject component with missing parent", func(t *testing.T) {
		orphanParentID := kernel.NewUUID()
		child, err := order.RestoreLine(
			kernel.NewUUID(), kernel.NewUUID(), false, "> Panel", order.DisplayProduct,
			1, money(t, 10), kernel.ZeroMoney(), 0,
			&orphanParentID, nil, false, false,
		)
		require.NoError(t, err)

		o, err := order.RestoreOrder(
			kernel.NewUUID(), "SO0042", "Dupont SARL", "EUR", placedAt,
			order.Draft, []*order.Line{child},
		)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should reject component under non-composite parent", func(t *testing.T) {
		parentID := kernel.NewUUID()
		parent, err := order.RestoreLine(
			parentID, kernel.NewUUID(), false, "Oak plank", order.DisplayProduct,
			1, money(t, 10), kernel.ZeroMoney(), 0,
			nil, nil, false, false,
		)
		require.NoError(t, err)
		child, err := order.RestoreLine(
			kernel.NewUUID(), kernel.NewUUID(), false, "> Panel", order.DisplayProduct,
			1, money(t, 10), kernel.ZeroMoney(), 0,
			&parentID, nil, false, false,
		)
		require.NoError(t, err)

		_, err = order.RestoreOrder(
			kernel.NewUUID(), "SO0042", "Dupont SARL", "EUR", placedAt,
			order.Draft, []*order.Line{parent, child},
		)

		assert.ErrorIs(t, err, order.ErrParentNotComposite)
	})

	t.Run("should reject composite product on a component line", func(t *testing.T) {
		parentID := kernel.NewUUID()
		parent, err := order.RestoreLine(
			parentID, kernel.NewUUID(), true, "Kitchen installation", order.DisplayProduct,
			1, money(t, 100), kernel.ZeroMoney(), 0,
			nil, nil, false, false,
		)
		require.NoError(t, err)
		nested, err := order.RestoreLine(
			kernel.NewUUID(), kernel.NewUUID(), true, "> Bathroom installation", order.DisplayProduct,
			1, money(t, 10), kernel.ZeroMoney(), 0,
			&parentID, nil, false, false,
		)
		require.NoError(t, err)

		_, err = order.RestoreOrder(
			kernel.NewUUID(), "SO0042", "Dupont SARL", "EUR", placedAt,
			order.Draft, []*order.Line{parent, nested},
		)

		assert.ErrorIs(t, err, order.ErrNestedComposite)
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), "SO0042", "Dupont SARL", "EUR", placedAt,
			order.Status(99), nil,
		)

		require.Error(t, err)
	})
}
