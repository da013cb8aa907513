package scriptgraph

// Write serializes graph to the persisted script container format (spec.md
// §6): a node count followed by, for each node in ascending id order, its
// id, entry flag, fixed-width type and node names, and a length-prefixed
// payload (prologue + type-specific tail, spec.md §4.6).
func Write(g *Graph) []byte {
	ids := g.NodeIDs()

	size := 4
	type encoded struct {
		id       uint32
		isEntry  bool
		name     string
		typeName string
		payload  []byte
	}
	records := make([]encoded, 0, len(ids))

	entryNameByID := make(map[uint32]string, len(g.entries))
	for name, id := range g.entries {
		entryNameByID[id] = name
	}

	for _, id := range ids {
		n, _ := g.Node(id)
		base := n.Base()

		payloadSize := prologueSize(base) + n.PayloadSize()
		payload := make([]byte, payloadSize)
		off := 0
		writePrologue(base, payload, &off)
		n.WritePayload(payload, &off)
		payload = payload[:off]

		name, isEntry := entryNameByID[id]
		if !isEntry {
			name = base.Name
		}

		records = append(records, encoded{
			id:       id,
			isEntry:  isEntry,
			name:     name,
			typeName: n.TypeName(),
			payload:  payload,
		})
		size += 4 + 1 + typeNameSize + nodeNameSize + 4 + len(payload)
	}

	buf := make([]byte, size)
	off := 0
	writeU32(buf, &off, uint32(len(records)))
	for _, rec := range records {
		writeU32(buf, &off, rec.id)
		writeBool(buf, &off, rec.isEntry)
		writeFixedString(buf, &off, rec.typeName, typeNameSize)
		writeFixedString(buf, &off, rec.name, nodeNameSize)
		writeU32(buf, &off, uint32(len(rec.payload)))
		copy(buf[off:], rec.payload)
		off += len(rec.payload)
	}
	return buf
}

// Read deserializes a script container produced by Write, constructing each
// node through catalog. Returns ErrUnknownNodeType if a record's type_name
// was never registered, or ErrTruncatedPayload if the buffer ends early.
// The returned graph has not yet been validated — call Graph.Validate to
// check referential integrity.
func Read(buf []byte, catalog *Catalog) (*Graph, error) {
	off := 0
	count, err := readU32(buf, &off)
	if err != nil {
		return nil, err
	}

	g := NewGraph()
	for i := uint32(0); i < count; i++ {
		id, err := readU32(buf, &off)
		if err != nil {
			return nil, err
		}
		isEntry, err := readBool(buf, &off)
		if err != nil {
			return nil, err
		}
		typeName, err := readFixedString(buf, &off, typeNameSize)
		if err != nil {
			return nil, err
		}
		nodeName, err := readFixedString(buf, &off, nodeNameSize)
		if err != nil {
			return nil, err
		}
		payloadSize, err := readU32(buf, &off)
		if err != nil {
			return nil, err
		}
		if off+int(payloadSize) > len(buf) {
			return nil, ErrTruncatedPayload
		}
		payload := buf[off : off+int(payloadSize)]
		off += int(payloadSize)

		n, err := catalog.Create(typeName, id)
		if err != nil {
			return nil, &NodeError{NodeID: id, TypeName: typeName, Cause: err}
		}
		base := n.Base()
		base.ID = id
		base.Name = nodeName

		payloadOff := 0
		if err := readPrologue(base, payload, &payloadOff); err != nil {
			return nil, &NodeError{NodeID: id, TypeName: typeName, Cause: err}
		}
		if err := n.ReadPayload(payload, &payloadOff); err != nil {
			return nil, &NodeError{NodeID: id, TypeName: typeName, Cause: err}
		}

		if err := g.AddNode(n); err != nil {
			return nil, err
		}
		if isEntry {
			g.SetEntry(nodeName, id)
		}
	}
	return g, nil
}
