package catalog

// builtinEntries are the references every board understands out of the box.
// Order matters: Lookup returns matches in declaration order, so the entries
// users reach for most often come first.
var builtinEntries = []Entry{
	{Token: "priceof()", Expansion: "priceOf(default, 0)"},
	{Token: "volumeof()", Expansion: "volumeOf(default, 0)"},
	{Token: "openof()", Expansion: "openOf(default, 0)"},
	{Token: "closeof()", Expansion: "closeOf(default, 0)"},
	{Token: "highof()", Expansion: "highOf(default, 0)"},
	{Token: "lowof()", Expansion: "lowOf(default, 0)"},
	{Token: "rsiof()", Expansion: "rsiOf(default, 0)"},
	{Token: "maof()", Expansion: "maOf(default, 0)"},
	{Token: "emaof()", Expansion: "emaOf(default, 0)"},
	{Token: "macdof()", Expansion: "macdOf(default, 0)"},
	{Token: "atrof()", Expansion: "atrOf(default, 0)"},
	{Token: "bollingerof()", Expansion: "bollingerOf(default, 0)"},
	{Token: "positionof()", Expansion: "positionOf(default)"},
	{Token: "portfoliovalue()", Expansion: "portfolioValue()"},
	{Token: "cashbalance()", Expansion: "cashBalance()"},
}
