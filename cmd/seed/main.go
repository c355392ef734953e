package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"abstract-main/pkg/config"
	"abstract-main/pkg/entity"
	"abstract-main/pkg/logger"
)

type clipFixture struct {
	*entity.Clip
	CommentCount int `json:"comment_count"`
}

type fixtures struct {
	Seed     uint64            `json:"seed"`
	Posts    []*entity.Post    `json:"posts"`
	Clips    []clipFixture     `json:"clips"`
	Products []*entity.Product `json:"products"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	var (
		seed     uint64
		author   string
		posts    int
		clips    int
		products int
		outPath  string
	)
	flag.Uint64Var(&seed, "seed", cfg.DemoSeed, "Random seed (0 picks one)")
	flag.StringVar(&author, "author", "@hdvapparel", "Author handle of posts and clips")
	flag.IntVar(&posts, "posts", 5, "Number of posts")
	flag.IntVar(&clips, "clips", 5, "Number of clips")
	flag.IntVar(&products, "products", 7, "Number of products")
	flag.StringVar(&outPath, "out", "", "Output file (default stdout)")
	flag.Parse()

	log := logger.New()

	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	data := fixtures{
		Seed:  seed,
		Posts: entity.DemoPosts(r, author, posts),
	}
	for _, c := range entity.DemoClips(r, author, clips) {
		data.Clips = append(data.Clips, clipFixture{Clip: c, CommentCount: c.CommentCount()})
	}
	data.Products = entity.DemoProducts(r, products)

	var out io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			log.Error("Failed to create %s: %v", outPath, err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		log.Error("Failed to write fixtures: %v", err)
		os.Exit(1)
	}

	if outPath != "" {
		log.Info("Wrote %d posts, %d clips and %d products to %s (seed %d)", len(data.Posts), len(data.Clips), len(data.Products), outPath, seed)
	}
}
