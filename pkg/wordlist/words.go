package wordlist

// defaultWords is the curated built-in word list: common, concrete,
// easily remembered English words between four and eight letters,
// letters only. It is intentionally modest in size; callers wanting a
// large search space should load their own list.
var defaultWords = []string{
	"acorn", "amber", "anchor", "anvil", "apron", "arrow", "aspen", "atlas",
	"autumn", "badge", "bamboo", "barley", "basin", "beacon", "birch", "bishop",
	"blanket", "bounty", "breeze", "bridge", "bronze", "brook", "bucket", "burrow",
	"butter", "cabin", "camel", "candle", "canoe", "canyon", "carpet", "castle",
	"cedar", "cellar", "chapel", "cherry", "chisel", "cider", "cinder", "clover",
	"cobalt", "comet", "copper", "coral", "cotton", "cradle", "crater", "cricket",
	"crystal", "cypress", "daisy", "dagger", "delta", "denim", "desert", "drift",
	"eagle", "ember", "engine", "falcon", "feather", "fiddle", "flint", "forest",
	"fossil", "fountain", "garnet", "gazebo", "ginger", "glacier", "goblet", "granite",
	"grove", "hammock", "harbor", "harvest", "hazel", "heron", "honey", "horizon",
	"hollow", "ivory", "jasper", "jungle", "juniper", "kettle", "knight", "lagoon",
	"lantern", "lark", "lattice", "lavender", "ledger", "lemon", "lighthouse", "linen",
	"locket", "lotus", "lumber", "magnet", "mango", "maple", "marble", "meadow",
	"melon", "mirror", "molten", "mosaic", "mountain", "mustard", "myrtle", "nectar",
	"nimbus", "north", "nutmeg", "oasis", "ocean", "olive", "onyx", "orchard",
	"otter", "paddle", "pampas", "papaya", "parchment", "pebble", "pepper", "pewter",
	"pigeon", "pillow", "pine", "plume", "pocket", "poppy", "prairie", "quartz",
	"quill", "raft", "raven", "ribbon", "ridge", "river", "rustic", "saddle",
	"saffron", "sage", "sapphire", "satchel", "shadow", "shore", "silver", "slate",
	"sparrow", "spice", "spruce", "summit", "sunset", "tavern", "thistle", "timber",
	"topaz", "torch", "trellis", "tulip", "tundra", "turnip", "valley", "velvet",
	"vessel", "violet", "walnut", "wander", "wheat", "willow", "winter", "zephyr",
}
