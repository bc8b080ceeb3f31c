package testutil

// PerftCase is a position with known perft node counts, indexed by depth.
type PerftCase struct {
	Name  string
	FEN   string
	Nodes []uint64
}

// Well-known test positions.
const (
	StartFEN     = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	KiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	EndgameFEN   = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	PromotionFEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	TalkchessFEN = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
	MidgameFEN   = "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10"
)

// PerftCases lists reference node counts; Nodes[0] is depth 1.
var PerftCases = []PerftCase{
	{Name: "start", FEN: StartFEN, Nodes: []uint64{20, 400, 8902, 197281}},
	{Name: "kiwipete", FEN: KiwipeteFEN, Nodes: []uint64{48, 2039, 97862}},
	{Name: "endgame", FEN: EndgameFEN, Nodes: []uint64{14, 191, 2812, 43238}},
	{Name: "promotion", FEN: PromotionFEN, Nodes: []uint64{6, 264, 9467}},
	{Name: "talkchess", FEN: TalkchessFEN, Nodes: []uint64{44, 1486, 62379}},
	{Name: "midgame", FEN: MidgameFEN, Nodes: []uint64{46, 2079, 89890}},
}

// SampleFENs are varied positions for property-style tests.
var SampleFENs = []string{
	StartFEN,
	KiwipeteFEN,
	EndgameFEN,
	PromotionFEN,
	TalkchessFEN,
	MidgameFEN,
	"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
	"8/8/8/KPp4r/8/8/8/7k w - c6 0 1",
	"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
	"4k3/1P6/8/8/8/8/6p1/4K3 w - - 0 1",
}
