// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"encoding/xml"
	"strings"
)

// Document is the efetch response for one identifier: a PubmedArticleSet
// holding (normally) a single journal article or book chapter. Only the
// elements the record builder reads are mapped.
type Document struct {
	XMLName      xml.Name      `xml:"PubmedArticleSet"`
	Articles     []Article     `xml:"PubmedArticle"`
	BookArticles []BookArticle `xml:"PubmedBookArticle"`
}

// Article is one PubmedArticle element.
type Article struct {
	Citation Citation `xml:"MedlineCitation"`
}

// Citation is the MedlineCitation element.
type Citation struct {
	PMID    string      `xml:"PMID"`
	Article ArticleBody `xml:"Article"`
}

// ArticleBody is the MedlineCitation/Article element.
type ArticleBody struct {
	Title   string   `xml:"ArticleTitle"`
	PubDate PubDate  `xml:"Journal>JournalIssue>PubDate"`
	Authors []Author `xml:"AuthorList>Author"`
}

// BookArticle is one PubmedBookArticle element, returned for Bookshelf
// records such as GeneReviews chapters.
type BookArticle struct {
	Document BookDocument `xml:"BookDocument"`
}

// BookDocument is the PubmedBookArticle/BookDocument element. Title is the
// chapter title; whole-book records have none.
type BookDocument struct {
	PMID    string   `xml:"PMID"`
	Title   string   `xml:"ArticleTitle"`
	Book    Book     `xml:"Book"`
	Authors []Author `xml:"AuthorList>Author"`
}

// Book is the BookDocument/Book element. Its author list holds the editors.
type Book struct {
	Title   string   `xml:"BookTitle"`
	PubDate PubDate  `xml:"PubDate"`
	Editors []Author `xml:"AuthorList>Author"`
}

// PubDate is the journal issue publication date. Year is absent for
// MedlineDate-only citations.
type PubDate struct {
	Year        string `xml:"Year"`
	MedlineDate string `xml:"MedlineDate"`
}

// Author is one AuthorList/Author entry. Every child is optional.
type Author struct {
	LastName        string            `xml:"LastName"`
	ForeName        string            `xml:"ForeName"`
	CollectiveName  string            `xml:"CollectiveName"`
	AffiliationInfo []AffiliationInfo `xml:"AffiliationInfo"`
}

// AffiliationInfo wraps one affiliation of an author.
type AffiliationInfo struct {
	Affiliation Affiliation `xml:"Affiliation"`
}

// Affiliation holds the free affiliation text and an optional nested Email
// element. Text is only the character data before the first child element;
// anything after an Email is not part of the classified affiliation.
type Affiliation struct {
	Text  string
	Email string
}

// UnmarshalXML decodes an Affiliation element, keeping the leading text and
// the first Email child.
func (a *Affiliation) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var text strings.Builder
	leading := true
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.CharData:
			if leading {
				text.Write(t)
			}
		case xml.StartElement:
			leading = false
			if t.Name.Local == "Email" && a.Email == "" {
				if err := d.DecodeElement(&a.Email, &t); err != nil {
					return err
				}
				continue
			}
			if err := d.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			a.Text = text.String()
			return nil
		}
	}
}

// Affiliation returns the author's first affiliation text and whether the
// author has one at all.
func (a Author) Affiliation() (string, bool) {
	if len(a.AffiliationInfo) == 0 {
		return "", false
	}
	return strings.TrimSpace(a.AffiliationInfo[0].Affiliation.Text), true
}

// Email returns the first affiliation-scoped email of the author, or "".
func (a Author) Email() string {
	for _, info := range a.AffiliationInfo {
		if e := strings.TrimSpace(info.Affiliation.Email); e != "" {
			return e
		}
	}
	return ""
}

// Name returns the author's last name, falling back to the collective name
// for group authors.
func (a Author) Name() string {
	if n := strings.TrimSpace(a.LastName); n != "" {
		return n
	}
	return strings.TrimSpace(a.CollectiveName)
}

// Authors returns every author of every journal article, then the editors
// and authors of every book article, each in document order.
func (d *Document) Authors() []Author {
	var all []Author
	for _, art := range d.Articles {
		all = append(all, art.Citation.Article.Authors...)
	}
	for _, book := range d.BookArticles {
		all = append(all, book.Document.Book.Editors...)
		all = append(all, book.Document.Authors...)
	}
	return all
}

// ParseDocument decodes an efetch XML body.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
