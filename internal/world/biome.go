package world

// DungeonBiome is the theme of a dungeon.
type DungeonBiome uint8

const (
	// BiomeGoblinWarren is a shallow warren of dirt and stone.
	BiomeGoblinWarren DungeonBiome = iota
	// BiomeUndeadCrypt descends from catacombs into bone crypts.
	BiomeUndeadCrypt
	// BiomeFungalGrotto is mossy cavern throughout.
	BiomeFungalGrotto
	// BiomeOrcStronghold is a stone fortress.
	BiomeOrcStronghold
	// BiomeAbyssalTemple opens in igneous rock above a temple.
	BiomeAbyssalTemple
	// BiomeDragonLair is reserved for the single dungeon ending in a cave lair.
	BiomeDragonLair
	// BiomeBeastDen is a cave strewn with bones.
	BiomeBeastDen
	// BiomeSerpentPit is a tangle of mossy tunnels.
	BiomeSerpentPit
)

// PlaceableBiomes lists every biome a regular dungeon can have.
var PlaceableBiomes = []DungeonBiome{
	BiomeGoblinWarren,
	BiomeUndeadCrypt,
	BiomeFungalGrotto,
	BiomeOrcStronghold,
	BiomeAbyssalTemple,
	BiomeBeastDen,
	BiomeSerpentPit,
}

// Name returns the display name of the biome.
func (b DungeonBiome) Name() string {
	switch b {
	case BiomeGoblinWarren:
		return "Goblin Warren"
	case BiomeUndeadCrypt:
		return "Undead Crypt"
	case BiomeFungalGrotto:
		return "Fungal Grotto"
	case BiomeOrcStronghold:
		return "Orc Stronghold"
	case BiomeAbyssalTemple:
		return "Abyssal Temple"
	case BiomeDragonLair:
		return "Dragon's Lair"
	case BiomeBeastDen:
		return "Beast Den"
	case BiomeSerpentPit:
		return "Serpent Pit"
	default:
		return "Unknown"
	}
}

// DungeonStyle selects the wall and floor art for a level. It has no effect
// on terrain.
type DungeonStyle uint8

const (
	// StyleDirtCaves is packed earth.
	StyleDirtCaves DungeonStyle = iota
	// StyleStoneBrick is dressed stone.
	StyleStoneBrick
	// StyleIgneous is dark volcanic rock.
	StyleIgneous
	// StyleLargeStone is heavy masonry.
	StyleLargeStone
	// StyleCatacombs is burial tunnels.
	StyleCatacombs
	// StyleBoneCrypt is walls of bone.
	StyleBoneCrypt
	// StyleMossyCavern is damp, moss-covered rock.
	StyleMossyCavern
	// StyleBlueTemple is carved blue stone.
	StyleBlueTemple
	// StyleBoneCave is raw cave littered with bones.
	StyleBoneCave
	// StyleMossyTunnel is narrow overgrown passages.
	StyleMossyTunnel
	// StyleRedCavern is the lair's red rock.
	StyleRedCavern
)

// String returns a human-readable style name.
func (s DungeonStyle) String() string {
	switch s {
	case StyleDirtCaves:
		return "dirt_caves"
	case StyleStoneBrick:
		return "stone_brick"
	case StyleIgneous:
		return "igneous"
	case StyleLargeStone:
		return "large_stone"
	case StyleCatacombs:
		return "catacombs"
	case StyleBoneCrypt:
		return "bone_crypt"
	case StyleMossyCavern:
		return "mossy_cavern"
	case StyleBlueTemple:
		return "blue_temple"
	case StyleBoneCave:
		return "bone_cave"
	case StyleMossyTunnel:
		return "mossy_tunnel"
	case StyleRedCavern:
		return "red_cavern"
	default:
		return "unknown"
	}
}

// StyleForLevel returns the style of a level in a dungeon of this biome.
// Cave levels are always red caverns.
func (b DungeonBiome) StyleForLevel(level int, isCave bool) DungeonStyle {
	if isCave {
		return StyleRedCavern
	}
	switch b {
	case BiomeGoblinWarren:
		if level <= 1 {
			return StyleDirtCaves
		}
		return StyleStoneBrick
	case BiomeUndeadCrypt:
		if level <= 1 {
			return StyleCatacombs
		}
		return StyleBoneCrypt
	case BiomeFungalGrotto:
		return StyleMossyCavern
	case BiomeOrcStronghold:
		if level == 0 {
			return StyleStoneBrick
		}
		return StyleLargeStone
	case BiomeAbyssalTemple:
		if level == 0 {
			return StyleIgneous
		}
		return StyleBlueTemple
	case BiomeBeastDen:
		if level <= 1 {
			return StyleBoneCave
		}
		return StyleBoneCrypt
	case BiomeSerpentPit:
		if level <= 1 {
			return StyleMossyTunnel
		}
		return StyleMossyCavern
	default:
		return StyleRedCavern
	}
}

// OverworldBiome is the climate band of an overworld row.
type OverworldBiome uint8

const (
	// TemperateForest covers the northern 60% of the overworld.
	TemperateForest OverworldBiome = iota
	// Jungle covers the southern 40%.
	Jungle
)

// String returns the display name of the band.
func (b OverworldBiome) String() string {
	if b == Jungle {
		return "Jungle"
	}
	return "Temperate Forest"
}

// OverworldBiomeAt returns the band containing row y.
func OverworldBiomeAt(y, mapHeight int) OverworldBiome {
	if y >= mapHeight*60/100 {
		return Jungle
	}
	return TemperateForest
}

var (
	temperateBiomes = []DungeonBiome{
		BiomeGoblinWarren, BiomeUndeadCrypt, BiomeOrcStronghold, BiomeBeastDen, BiomeFungalGrotto,
	}
	jungleBiomes = []DungeonBiome{
		BiomeSerpentPit, BiomeUndeadCrypt, BiomeFungalGrotto, BiomeAbyssalTemple, BiomeGoblinWarren,
	}
)

// BiomeForDungeon picks a biome suited to the band the entrance sits in.
func BiomeForDungeon(seed uint64, entranceY, mapHeight int) DungeonBiome {
	candidates := temperateBiomes
	if OverworldBiomeAt(entranceY, mapHeight) == Jungle {
		candidates = jungleBiomes
	}
	return candidates[xorshift64(seedState(seed))%uint64(len(candidates))]
}

// SelectUniqueBiomes returns n distinct placeable biomes in a seed-driven
// order. Once every biome is used the sequence repeats.
func SelectUniqueBiomes(n int, seed uint64) []DungeonBiome {
	pool := append([]DungeonBiome(nil), PlaceableBiomes...)
	rng := seedState(seed)
	// Fisher-Yates with the explicit generator.
	for i := len(pool) - 1; i > 0; i-- {
		rng = xorshift64(rng)
		j := int(rng % uint64(i+1))
		pool[i], pool[j] = pool[j], pool[i]
	}

	out := make([]DungeonBiome, n)
	for i := range out {
		out[i] = pool[i%len(pool)]
	}
	return out
}
