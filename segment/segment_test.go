package segment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zhongwenanki/render"
	"zhongwenanki/romanize"
	"zhongwenanki/tokenize"
)

func TestNew(t *testing.T) {
	for _, name := range []string{Uniseg, None} {
		seg, err := New(name)
		require.NoError(t, err, name)
		assert.NotNil(t, seg)
	}
	_, err := New("jieba")
	assert.Error(t, err)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{Gse, KagomeIPA, KagomeUni, None, Uniseg}, Names())
}

func TestWhole(t *testing.T) {
	assert.Equal(t, []string{"你好世界"}, Whole{}.Segment("你好世界"))
	assert.Nil(t, Whole{}.Segment(""))
}

func TestUAX29(t *testing.T) {
	words := UAX29{}.Segment("你好，Python3!")
	assert.Equal(t, []string{"你", "好", "，", "Python3", "!"}, words)
	assert.Equal(t, "", strings.Join(UAX29{}.Segment(""), ""))
}

func TestDictionarySegmentersCoverInput(t *testing.T) {
	if testing.Short() {
		t.Skip("loads dictionaries")
	}
	for _, name := range []string{Gse, KagomeIPA} {
		seg, err := New(name)
		require.NoError(t, err, name)
		for _, s := range []string{"你好世界", "银行的行长姓行", "我喜欢Python和C++。"} {
			words := seg.Segment(s)
			assert.NotEmpty(t, words, "%s: %q", name, s)
			assert.Equal(t, s, strings.Join(words, ""), "%s: %q", name, s)
		}
	}
}

var mixedSentences = []string{
	"我喜欢Python和C++。",
	"iPhone 15 Pro很贵！",
	"ABC公司2024年成立, CEO是Zhang San.",
	"你好   世界",
}

func TestGseKeepsInputExact(t *testing.T) {
	seg, err := New(Gse)
	require.NoError(t, err)
	oracle, err := romanize.NewDefault()
	require.NoError(t, err)
	tk := tokenize.New(seg, oracle)
	for _, s := range mixedSentences {
		for _, w := range seg.Segment(s) {
			assert.Contains(t, s, w)
		}
		tokens, err := tk.Tokenize(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, render.PlainText(tokens), s)
	}
}

func TestRestore(t *testing.T) {
	s := "我喜欢Python和C++"
	assert.Equal(t, []string{"我", "喜欢", "Python", "和", "C++"},
		restore(s, []string{"我", "喜欢", "python", "和", "c++"}))
	assert.Equal(t, []string{"我", "喜欢"}, restore("我喜欢", []string{"我", "喜欢"}))
	// dropped characters cannot be placed
	assert.Equal(t, []string{"a b"}, restore("a b", []string{"a", "b"}))
	assert.Equal(t, []string{"abc"}, restore("abc", []string{"abcd"}))
}
