package computer

// Builder assembles a Computer step by step.
// The zero value is not ready for use; call NewBuilder.
type Builder struct {
	computer Computer
}

// NewBuilder returns a builder whose parts hold the default placeholders.
func NewBuilder() *Builder {
	return &Builder{
		computer: Computer{
			CPU:     DefaultCPU,
			RAM:     DefaultRAM,
			Storage: DefaultStorage,
		},
	}
}

// SetCPU sets the processor.
func (b *Builder) SetCPU(cpu string) *Builder {
	b.computer.CPU = cpu
	return b
}

// SetRAM sets the memory.
func (b *Builder) SetRAM(ram string) *Builder {
	b.computer.RAM = ram
	return b
}

// SetStorage sets the storage.
func (b *Builder) SetStorage(storage string) *Builder {
	b.computer.Storage = storage
	return b
}

// SetGPU sets the graphics card.
func (b *Builder) SetGPU(gpu string) *Builder {
	b.computer.GPU = gpu
	return b
}

// Build returns the assembled computer.
// The result is a copy: later setter calls do not change it.
func (b *Builder) Build() Computer {
	return b.computer
}
