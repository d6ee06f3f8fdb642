package services

// commandGroup is one entry in the interpreter's ordered dispatch table.
// Keywords mix English and Hindi transliterations; the first group with
// any keyword present in the utterance wins, so group order is the
// tie-break.
type commandGroup struct {
	keywords []string
	route    string
	ackEN    string
	ackHI    string
}

var commandTable = []commandGroup{
	{
		keywords: []string{"weather", "mausam", "mosam"},
		route:    "/weather",
		ackEN:    "Opening weather information",
		ackHI:    "Mausam ki jankari khul rahi hai",
	},
	{
		keywords: []string{"mandi", "market", "price", "rate", "bhav"},
		route:    "/market",
		ackEN:    "Opening market rates",
		ackHI:    "Mandi ke bhav khul rahe hain",
	},
	{
		keywords: []string{"doctor", "health", "fasal", "bimari"},
		route:    "/crop-health",
		ackEN:    "Opening crop health doctor",
		ackHI:    "Fasal doctor khul raha hai",
	},
	{
		keywords: []string{"chat", "sahayak", "help"},
		route:    "/expert-chat",
		ackEN:    "Opening kisan assistant",
		ackHI:    "Kisan sahayak khul raha hai",
	},
	{
		keywords: []string{"scheme", "yojana", "sarkari"},
		route:    "/schemes",
		ackEN:    "Opening government schemes",
		ackHI:    "Sarkari yojanaein khul rahi hain",
	},
	{
		keywords: []string{"home", "dashboard", "shuruat"},
		route:    "/",
		ackEN:    "Going to dashboard",
		ackHI:    "Dashboard par jaa rahe hain",
	},
	{
		keywords: []string{"profile", "meri profile"},
		route:    "/profile",
		ackEN:    "Opening your profile",
		ackHI:    "Aapki profile khul rahi hai",
	},
}
