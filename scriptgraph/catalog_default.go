package scriptgraph

// DefaultCatalog returns a Catalog pre-populated with the 17 built-in node
// types from spec.md §4.3. A host wanting its own node types alongside these
// registers them on the returned Catalog before first use.
func DefaultCatalog() *Catalog {
	c := NewCatalog()

	c.Register("Entry", func(id uint32) Node { return NewEntry(id) })
	c.Register("Condition", func(id uint32) Node { return NewCondition(id) })
	c.Register("Loop", func(id uint32) Node { return NewLoop(id) })

	c.Register("BooleanComparison", func(id uint32) Node { return NewBooleanComparison(id, BooleanAnd) })
	c.Register("NotComparison", func(id uint32) Node { return NewNotComparison(id) })
	c.Register("NumberComparison", func(id uint32) Node { return NewNumberComparison(id, NumberGT) })

	c.Register("Math", func(id uint32) Node { return NewMath(id, MathAdd) })

	c.Register("BooleanLiteral", func(id uint32) Node { return NewBooleanLiteral(id, false) })
	c.Register("NumberLiteral", func(id uint32) Node { return NewNumberLiteral(id, 0) })
	c.Register("StringLiteral", func(id uint32) Node { return NewStringLiteral(id, "") })

	c.Register("Log", func(id uint32) Node { return NewLog(id) })

	c.Register("LoadBool", func(id uint32) Node { return NewLoadBool(id) })
	c.Register("SaveBool", func(id uint32) Node { return NewSaveBool(id) })
	c.Register("LoadNumber", func(id uint32) Node { return NewLoadNumber(id) })
	c.Register("SaveNumber", func(id uint32) Node { return NewSaveNumber(id) })
	c.Register("LoadString", func(id uint32) Node { return NewLoadString(id) })
	c.Register("SaveString", func(id uint32) Node { return NewSaveString(id) })

	return c
}
