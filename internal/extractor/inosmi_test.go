package extractor

import (
	"errors"
	"strings"
	"testing"

	"github.com/kailas-cloud/jaundice/internal/domain"
)

const inosmiPage = `<!doctype html>
<html>
<head><title>Трамп и санкции - ИноСМИ</title></head>
<body>
  <header>Меню сайта</header>
  <div class="layout-article" data-id="274720044">
    <div class="article__meta">17.09.2025</div>
    <h1 class="article__title">Трамп   и санкции</h1>
    <div class="article__text">
      <p>В субботу президент <a href="/x">США</a> заявил о <b>шоке</b>.</p>
      <p>Это стало началом!</p>
      <aside>Читайте также: другое</aside>
      <div class="media__copyright">© AP Photo</div>
      <script>var tracking = 1;</script>
    </div>
    <div class="article__tags">политика, экономика</div>
    <div class="share">Поделиться</div>
  </div>
  <footer>Подвал</footer>
</body>
</html>`

func TestInosmi_ExtractsContainer(t *testing.T) {
	a, err := Inosmi([]byte(inosmiPage))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a.Title != "Трамп и санкции" {
		t.Errorf("Title = %q", a.Title)
	}
	for _, want := range []string{"В субботу президент США заявил о шоке.", "Это стало началом!"} {
		if !strings.Contains(a.Text, want) {
			t.Errorf("expected text to contain %q, got %q", want, a.Text)
		}
	}
	for _, unwanted := range []string{"17.09.2025", "Читайте также", "AP Photo", "tracking", "политика", "Поделиться", "Меню", "Подвал", "<p>"} {
		if strings.Contains(a.Text, unwanted) {
			t.Errorf("did not expect %q in text %q", unwanted, a.Text)
		}
	}
}

func TestInosmi_FallsBackToArticleTag(t *testing.T) {
	page := `<html><head><title>Заголовок страницы</title></head>
<body><article><p>Первый абзац.</p><p>Второй абзац.</p></article></body></html>`

	a, err := Inosmi([]byte(page))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Title != "Заголовок страницы" {
		t.Errorf("Title = %q", a.Title)
	}
	if a.Text != "Первый абзац. Второй абзац." {
		t.Errorf("Text = %q", a.Text)
	}
}

func TestInosmi_NotFound(t *testing.T) {
	page := `<html><body><div class="main">Example Domain</div></body></html>`

	_, err := Inosmi([]byte(page))
	if !errors.Is(err, domain.ErrArticleNotFound) {
		t.Fatalf("expected ErrArticleNotFound, got %v", err)
	}
}
