package entity

import (
	"fmt"
	"math/rand/v2"
	"time"
)

const (
	demoClipURL      = "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4"
	demoClipThumbURL = "https://peach.blender.org/wp-content/uploads/title_anouncement.jpg?x11217"
)

// DemoPosts builds n posts with three images each, 0-500 likes and an age
// between 1 and 23 hours.
func DemoPosts(r *rand.Rand, author string, n int) []*Post {
	posts := make([]*Post, 0, n)
	now := time.Now()
	for i := 1; i <= n; i++ {
		p := NewPost(author, fmt.Sprintf("This is the caption for post #%d.", i), []string{
			fmt.Sprintf("post%d_1", i),
			fmt.Sprintf("post%d_2", i),
			fmt.Sprintf("post%d_3", i),
		})
		p.Like.Count = r.IntN(501)
		p.CreatedAt = now.Add(-time.Duration(1+r.IntN(23)) * time.Hour)
		posts = append(posts, p)
	}
	return posts
}

func DemoClips(r *rand.Rand, author string, n int) []*Clip {
	clips := make([]*Clip, 0, n)
	for i := 1; i <= n; i++ {
		c := NewClip(author, demoClipURL, demoClipThumbURL, fmt.Sprintf("Clip #%d", i))
		c.Views = r.IntN(10_001)
		c.Like.Count = r.IntN(1_001)
		c.baseComments = r.IntN(501)
		clips = append(clips, c)
	}
	return clips
}

func DemoProducts(r *rand.Rand, n int) []*Product {
	products := make([]*Product, 0, n)
	for i := 1; i <= n; i++ {
		cents := 1_000 + r.IntN(19_000)
		products = append(products, NewProduct(
			fmt.Sprintf("Product %d", i),
			fmt.Sprintf("Limited drop #%d", i),
			float64(cents)/100,
			"",
		))
	}
	return products
}

// PostAge renders the relative age shown under a post ("3h", "2d").
func PostAge(created, now time.Time) string {
	d := now.Sub(created)
	switch {
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}
