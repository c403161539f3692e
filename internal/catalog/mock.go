package catalog

// MockComponents is a small development-only dataset for working against
// an unreachable collaborator. It is only served when the user explicitly
// opts in (--mock); a real empty catalog is reported as empty, never
// silently substituted.
func MockComponents() []Component {
	return []Component{
		{
			ID: "cpu-1", Name: "Intel Core i7-13700K", Slot: SlotCPU,
			Brand: "Intel", Model: "Core i7-13700K", Price: 2499,
			Image: "/images/cpu.png", Available: true,
			Specs: NewStructuredSpecs(map[string]any{
				"cores": 16, "threads": 24,
				"baseClock": "3.4 GHz", "boostClock": "5.4 GHz",
				"socket": "LGA1700",
			}),
		},
		{
			ID: "gpu-1", Name: "NVIDIA GeForce RTX 4070", Slot: SlotGPU,
			Brand: "NVIDIA", Model: "RTX 4070", Price: 3999,
			Image: "/images/gpu.png", Available: true,
			Specs: NewStructuredSpecs(map[string]any{
				"memory": "12GB GDDR6X", "memoryBus": "192-bit",
				"baseClock": "1920 MHz", "boostClock": "2475 MHz",
			}),
		},
		{
			ID: "mb-1", Name: "ASUS ROG Strix Z790-E", Slot: SlotMotherboard,
			Brand: "ASUS", Model: "ROG Strix Z790-E", Price: 1999,
			Image: "/images/motherboard.png", Available: true,
			Specs: NewStructuredSpecs(map[string]any{
				"socket": "LGA1700", "chipset": "Intel Z790",
				"formFactor": "ATX", "memorySlots": 4,
			}),
		},
		{
			ID: "ram-1", Name: "Corsair Vengeance LPX 32GB", Slot: SlotRAM,
			Brand: "Corsair", Model: "Vengeance LPX", Price: 899,
			Image: "/images/ram.png", Available: true,
			Specs: NewStructuredSpecs(map[string]any{
				"capacity": "32GB", "speed": "DDR4-3200",
				"modules": 2, "latency": "CL16",
			}),
		},
		{
			ID: "case-1", Name: "Fractal Design Meshify C", Slot: SlotCase,
			Brand: "Fractal Design", Model: "Meshify C", Price: 599,
			Image: "/images/case.png", Available: true,
			Specs: NewStructuredSpecs(map[string]any{
				"formFactor": "Mid Tower", "maxGpuLength": "315mm",
				"maxCpuHeight": "170mm",
			}),
		},
	}
}
