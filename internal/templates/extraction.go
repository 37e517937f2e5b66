package templates

const extractionExtractorSrc = `"""Text extraction from heterogeneous document formats.

One extractor per format, all normalizing to ExtractedDocument so the rest of
the pipeline never cares where content came from.
"""

import logging
from abc import ABC, abstractmethod
from dataclasses import dataclass, field
from datetime import datetime, timezone
from pathlib import Path

logger = logging.getLogger(__name__)


@dataclass
class ExtractedDocument:
    document_id: str
    source_path: str
    content: str
    content_type: str
    extracted_at: datetime = field(default_factory=lambda: datetime.now(timezone.utc))
    metadata: dict = field(default_factory=dict)


class Extractor(ABC):
    """Base class for format-specific extractors."""

    extensions: tuple[str, ...] = ()

    @abstractmethod
    def extract(self, path: Path) -> ExtractedDocument:
        ...

    def handles(self, path: Path) -> bool:
        return path.suffix.lower() in self.extensions


class PlainTextExtractor(Extractor):
    extensions = (".txt", ".md")

    def extract(self, path: Path) -> ExtractedDocument:
        content = path.read_text(encoding="utf-8", errors="replace")
        return ExtractedDocument(
            document_id=path.stem,
            source_path=str(path),
            content=content,
            content_type="text/plain",
        )


class PdfExtractor(Extractor):
    extensions = (".pdf",)

    def extract(self, path: Path) -> ExtractedDocument:
        from pypdf import PdfReader

        reader = PdfReader(str(path))
        pages = [page.extract_text() or "" for page in reader.pages]
        return ExtractedDocument(
            document_id=path.stem,
            source_path=str(path),
            content="\n\n".join(pages),
            content_type="application/pdf",
            metadata={"page_count": len(pages)},
        )


class HtmlExtractor(Extractor):
    extensions = (".html", ".htm")

    def extract(self, path: Path) -> ExtractedDocument:
        from bs4 import BeautifulSoup

        soup = BeautifulSoup(path.read_text(encoding="utf-8", errors="replace"), "html.parser")
        for tag in soup(["script", "style"]):
            tag.decompose()
        return ExtractedDocument(
            document_id=path.stem,
            source_path=str(path),
            content=soup.get_text(separator="\n", strip=True),
            content_type="text/html",
        )


class DataExtractor:
    """Routes documents to the right extractor by extension."""

    def __init__(self, extractors: list[Extractor] | None = None):
        self.extractors = extractors or [
            PlainTextExtractor(),
            PdfExtractor(),
            HtmlExtractor(),
        ]

    def extract(self, path: Path) -> ExtractedDocument:
        for extractor in self.extractors:
            if extractor.handles(path):
                logger.info("extracting %s with %s", path.name, type(extractor).__name__)
                return extractor.extract(path)
        raise ValueError(f"no extractor for {path.suffix}")
`

const extractionCognitiveSrc = `"""Document enrichment through Azure AI services.

Adds OCR output, entities, key phrases, and language detection on top of raw
extracted text. All calls authenticate with managed identity.
"""

import logging
from dataclasses import dataclass, field

from azure.ai.documentintelligence import DocumentIntelligenceClient
from azure.ai.textanalytics import TextAnalyticsClient
from azure.identity import DefaultAzureCredential

logger = logging.getLogger(__name__)


@dataclass
class EnrichmentResult:
    language: str
    entities: list[dict] = field(default_factory=list)
    key_phrases: list[str] = field(default_factory=list)
    ocr_content: str | None = None


class CognitiveProcessor:
    """Wraps the two AI service clients behind one enrichment call."""

    def __init__(self, language_endpoint: str, document_endpoint: str):
        credential = DefaultAzureCredential()
        self.text_client = TextAnalyticsClient(language_endpoint, credential)
        self.document_client = DocumentIntelligenceClient(document_endpoint, credential)

    def enrich(self, content: str, *, needs_ocr: bool = False, source_url: str | None = None) -> EnrichmentResult:
        language = self._detect_language(content)
        result = EnrichmentResult(language=language)

        if needs_ocr and source_url:
            result.ocr_content = self._run_ocr(source_url)
            content = result.ocr_content or content

        batch = [content[:5000]]
        entities = self.text_client.recognize_entities(batch, language=language)[0]
        if not entities.is_error:
            result.entities = [
                {"text": e.text, "category": e.category, "confidence": e.confidence_score}
                for e in entities.entities
            ]

        phrases = self.text_client.extract_key_phrases(batch, language=language)[0]
        if not phrases.is_error:
            result.key_phrases = list(phrases.key_phrases)

        logger.info(
            "enriched document: lang=%s entities=%d phrases=%d",
            language, len(result.entities), len(result.key_phrases),
        )
        return result

    def _detect_language(self, content: str) -> str:
        detected = self.text_client.detect_language([content[:1000]])[0]
        if detected.is_error:
            return "en"
        return detected.primary_language.iso6391_name

    def _run_ocr(self, source_url: str) -> str | None:
        poller = self.document_client.begin_analyze_document("prebuilt-read", {"urlSource": source_url})
        analyzed = poller.result()
        return analyzed.content
`
