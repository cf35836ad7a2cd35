package events

// Chunk is one append-only answer text segment.
type Chunk struct {
	Base
	Content string
}

func (e Chunk) String() string { return e.Content }

func NewChunk(content string) Chunk {
	return Chunk{Base: NewBase(KindChunk), Content: content}
}
