package luapat

import (
	"strings"
	"testing"
)

func BenchmarkLiteral(b *testing.B) {
	subject := []byte("xabcy")
	pattern := []byte("abc")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Find(subject, pattern)
	}
}

// BenchmarkLiteralLongPrefix measures the cost of retrying at every offset.
func BenchmarkLiteralLongPrefix(b *testing.B) {
	subject := []byte(strings.Repeat("x", 1000) + "needle")
	pattern := []byte("needle")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Find(subject, pattern)
	}
}

// BenchmarkPathological tests nested repetition that backtracks heavily.
// Pattern: a*a*a*b against aaaaa...a
func BenchmarkPathological(b *testing.B) {
	subject := []byte(strings.Repeat("a", 20))
	pattern := []byte("a*a*a*b")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Find(subject, pattern)
	}
}

func BenchmarkCaptures(b *testing.B) {
	subject := []byte("John Doe")
	pattern := []byte("(%w+)%s+(%w+)")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r, _ := Find(subject, pattern)
		r.Captures()
	}
}

func BenchmarkCharClass(b *testing.B) {
	subject := []byte("hello_world_123")
	pattern := []byte("[%w_]+")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Find(subject, pattern)
	}
}

func BenchmarkNegatedSet(b *testing.B) {
	subject := []byte("abcdefghijklmnop")
	pattern := []byte("[^0-9]+")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Find(subject, pattern)
	}
}

func BenchmarkFrontier(b *testing.B) {
	subject := []byte("find word in text")
	pattern := []byte("%f[%w]word%f[%W]")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Find(subject, pattern)
	}
}

func BenchmarkBalanced(b *testing.B) {
	subject := []byte("call(f(x), g(y, h(z)))")
	pattern := []byte("%b()")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Find(subject, pattern)
	}
}

func BenchmarkBackreference(b *testing.B) {
	subject := []byte("<div>content</div>")
	pattern := []byte("<(%a+)>.-</%1>")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Find(subject, pattern)
	}
}

func BenchmarkGmatch(b *testing.B) {
	subject := []byte(strings.Repeat("word ", 200))
	pattern := []byte("%a+")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := Gmatch(subject, pattern)
		for it.Next() {
		}
	}
}

func BenchmarkGsub(b *testing.B) {
	subject := []byte(strings.Repeat("key=value ", 100))
	pattern := []byte("(%w+)=(%w+)")
	repl := []byte("%2=%1")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Gsub(subject, pattern, repl, -1)
	}
}

func BenchmarkSixteenBit(b *testing.B) {
	subject := UTF16(strings.Repeat("日本語 ", 100) + "end")
	pattern := UTF16("e%a+$")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Find(subject, pattern)
	}
}
