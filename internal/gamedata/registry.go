package gamedata

import (
	"io/fs"
	"math/rand"
	"slices"

	"github.com/samdwyer/dungeonascend/internal/errors"
)

// Catalog holds the validated biome, enemy and resource records, keyed by
// normalized name. It is immutable after construction and safe for
// concurrent reads. Lookups return nil for unknown names.
type Catalog struct {
	biomes    map[string]*BiomeDef
	enemies   map[string]*EnemyDef
	resources map[string]*ResourceDef

	biomeList    []BiomeDef
	enemyList    []EnemyDef
	resourceList []ResourceDef
}

// NewCatalog validates the records and indexes them by normalized ID.
func NewCatalog(biomes []BiomeDef, enemies []EnemyDef, resources []ResourceDef) (*Catalog, error) {
	c := &Catalog{
		biomes:       make(map[string]*BiomeDef, len(biomes)),
		enemies:      make(map[string]*EnemyDef, len(enemies)),
		resources:    make(map[string]*ResourceDef, len(resources)),
		biomeList:    slices.Clone(biomes),
		enemyList:    slices.Clone(enemies),
		resourceList: slices.Clone(resources),
	}

	for i := range c.enemyList {
		e := &c.enemyList[i]
		e.ID = NormalizeName(e.ID)
		if e.ID == "" {
			return nil, errors.DataLossf("enemy %d has no id", i)
		}
		if !e.Tier.Valid() {
			return nil, errors.DataLossf("enemy %q has unknown tier %q", e.ID, e.Tier)
		}
		if e.BaseHP <= 0 {
			e.BaseHP = defaultBaseHP
		}
		if e.BaseDamage <= 0 {
			e.BaseDamage = defaultBaseDamage
		}
		if _, dup := c.enemies[e.ID]; dup {
			return nil, errors.DataLossf("duplicate enemy %q", e.ID)
		}
		c.enemies[e.ID] = e
	}

	for i := range c.resourceList {
		r := &c.resourceList[i]
		r.ID = NormalizeName(r.ID)
		if r.ID == "" {
			return nil, errors.DataLossf("resource %d has no id", i)
		}
		if !r.Rarity.Valid() {
			return nil, errors.DataLossf("resource %q has unknown rarity %q", r.ID, r.Rarity)
		}
		if _, dup := c.resources[r.ID]; dup {
			return nil, errors.DataLossf("duplicate resource %q", r.ID)
		}
		c.resources[r.ID] = r
	}

	for i := range c.biomeList {
		b := &c.biomeList[i]
		b.ID = NormalizeName(b.ID)
		if b.ID == "" {
			return nil, errors.DataLossf("biome %d has no id", i)
		}
		if _, dup := c.biomes[b.ID]; dup {
			return nil, errors.DataLossf("duplicate biome %q", b.ID)
		}
		if err := c.checkBiomeRefs(b); err != nil {
			return nil, err
		}
		c.biomes[b.ID] = b
	}

	return c, nil
}

func (c *Catalog) checkBiomeRefs(b *BiomeDef) error {
	refs := append(append([]string{}, b.CommonEnemies...), b.MiniBosses...)
	if b.MegaBoss != "" {
		refs = append(refs, b.MegaBoss)
	}
	for _, id := range refs {
		if c.enemies[NormalizeName(id)] == nil {
			return errors.DataLossf("biome %q references unknown enemy %q", b.ID, id).WithMeta("biome", b.ID)
		}
	}
	for _, id := range b.Resources {
		if c.resources[NormalizeName(id)] == nil {
			return errors.DataLossf("biome %q references unknown resource %q", b.ID, id).WithMeta("biome", b.ID)
		}
	}
	return nil
}

// LoadCatalog builds a catalog from the embedded JSON files.
func LoadCatalog() (*Catalog, error) {
	return LoadCatalogFS(dataFS)
}

// LoadCatalogFS builds a catalog from biomes.json, enemies.json and
// resources.json in fsys.
func LoadCatalogFS(fsys fs.FS) (*Catalog, error) {
	biomes, err := LoadFS[BiomesFile](fsys, biomesFile)
	if err != nil {
		return nil, err
	}
	enemies, err := LoadFS[EnemiesFile](fsys, enemiesFile)
	if err != nil {
		return nil, err
	}
	resources, err := LoadFS[ResourcesFile](fsys, resourcesFile)
	if err != nil {
		return nil, err
	}
	if len(biomes.Biomes) == 0 {
		return nil, errors.DataLossf("no biomes loaded from %s", biomesFile)
	}
	return NewCatalog(biomes.Biomes, enemies.Enemies, resources.Resources)
}

// MustLoadCatalog loads the embedded catalog, panicking on error.
func MustLoadCatalog() *Catalog {
	catalog, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return catalog
}

// Biome returns the biome with the given name, or nil if not found.
func (c *Catalog) Biome(name string) *BiomeDef {
	return c.biomes[NormalizeName(name)]
}

// Enemy returns the enemy with the given name, or nil if not found.
func (c *Catalog) Enemy(name string) *EnemyDef {
	return c.enemies[NormalizeName(name)]
}

// Resource returns the resource with the given name, or nil if not found.
func (c *Catalog) Resource(name string) *ResourceDef {
	return c.resources[NormalizeName(name)]
}

// Biomes returns all biome definitions in file order.
func (c *Catalog) Biomes() []BiomeDef {
	return c.biomeList
}

// BiomeNames returns the biome identifiers in file order.
func (c *Catalog) BiomeNames() []string {
	names := make([]string, len(c.biomeList))
	for i := range c.biomeList {
		names[i] = c.biomeList[i].ID
	}
	return names
}

// Enemies returns all enemy definitions in file order.
func (c *Catalog) Enemies() []EnemyDef {
	return c.enemyList
}

// Resources returns all resource definitions in file order.
func (c *Catalog) Resources() []ResourceDef {
	return c.resourceList
}

// CommonEnemies returns the biome's common enemy pool.
func (c *Catalog) CommonEnemies(biome string) []*EnemyDef {
	b := c.Biome(biome)
	if b == nil {
		return nil
	}
	return c.enemiesByID(b.CommonEnemies)
}

// MiniBosses returns the biome's mini-boss pool.
func (c *Catalog) MiniBosses(biome string) []*EnemyDef {
	b := c.Biome(biome)
	if b == nil {
		return nil
	}
	return c.enemiesByID(b.MiniBosses)
}

// MegaBoss returns the biome's mega-boss, or nil when it has none.
func (c *Catalog) MegaBoss(biome string) *EnemyDef {
	b := c.Biome(biome)
	if b == nil || b.MegaBoss == "" {
		return nil
	}
	return c.Enemy(b.MegaBoss)
}

// EnemiesInBiome returns every enemy whose biome list includes biome.
func (c *Catalog) EnemiesInBiome(biome string) []*EnemyDef {
	key := NormalizeName(biome)
	var result []*EnemyDef
	for i := range c.enemyList {
		if c.enemyList[i].InBiome(key) {
			result = append(result, &c.enemyList[i])
		}
	}
	return result
}

// ResourcesForBiome returns the resources valid in the biome, in the
// order the biome lists them.
func (c *Catalog) ResourcesForBiome(biome string) []*ResourceDef {
	b := c.Biome(biome)
	if b == nil {
		return nil
	}
	result := make([]*ResourceDef, 0, len(b.Resources))
	for _, id := range b.Resources {
		if r := c.Resource(id); r != nil {
			result = append(result, r)
		}
	}
	return result
}

// RandomEnemy picks uniformly from the pool, or returns nil for an empty pool.
func RandomEnemy(pool []*EnemyDef, rng *rand.Rand) *EnemyDef {
	if len(pool) == 0 {
		return nil
	}
	return pool[rng.Intn(len(pool))]
}

func (c *Catalog) enemiesByID(ids []string) []*EnemyDef {
	result := make([]*EnemyDef, 0, len(ids))
	for _, id := range ids {
		if e := c.Enemy(id); e != nil {
			result = append(result, e)
		}
	}
	return result
}
