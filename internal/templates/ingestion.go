package templates

const ingestionChunkProcessorSrc = `"""Token-aware document chunking for the ingestion pipeline.

Splits extracted text into chunks that respect sentence boundaries while
staying inside the embedding model's token budget. Each chunk carries enough
provenance to trace it back to its source document.
"""

import hashlib
import logging
import re
from dataclasses import dataclass, field
from enum import Enum

logger = logging.getLogger(__name__)


class ChunkStrategy(Enum):
    FIXED_SIZE = "fixed_size"
    SENTENCE_BASED = "sentence_based"
    PARAGRAPH_BASED = "paragraph_based"


@dataclass
class ChunkMetadata:
    chunk_id: str
    document_id: str
    chunk_index: int
    token_count: int
    start_position: int
    end_position: int


@dataclass
class Chunk:
    content: str
    metadata: ChunkMetadata


@dataclass
class ChunkConfig:
    strategy: ChunkStrategy = ChunkStrategy.SENTENCE_BASED
    max_tokens: int = 1000
    overlap_tokens: int = 100


class ChunkProcessor:
    """Splits one document's text into embedding-ready chunks."""

    def __init__(self, config: ChunkConfig | None = None):
        self.config = config or ChunkConfig()

    def process(self, document_id: str, text: str) -> list[Chunk]:
        sentences = self._split_sentences(text)
        chunks: list[Chunk] = []
        current: list[str] = []
        current_tokens = 0
        position = 0

        for sentence in sentences:
            tokens = self._estimate_tokens(sentence)
            if current and current_tokens + tokens > self.config.max_tokens:
                chunks.append(self._build_chunk(document_id, len(chunks), current, position))
                position += sum(len(s) for s in current)
                current = self._carry_overlap(current)
                current_tokens = sum(self._estimate_tokens(s) for s in current)
            current.append(sentence)
            current_tokens += tokens

        if current:
            chunks.append(self._build_chunk(document_id, len(chunks), current, position))

        logger.info("chunked %s into %d chunks", document_id, len(chunks))
        return chunks

    def _build_chunk(self, document_id: str, index: int, sentences: list[str], start: int) -> Chunk:
        content = " ".join(sentences)
        chunk_id = hashlib.sha256(f"{document_id}:{index}".encode()).hexdigest()[:24]
        return Chunk(
            content=content,
            metadata=ChunkMetadata(
                chunk_id=chunk_id,
                document_id=document_id,
                chunk_index=index,
                token_count=self._estimate_tokens(content),
                start_position=start,
                end_position=start + len(content),
            ),
        )

    def _carry_overlap(self, sentences: list[str]) -> list[str]:
        carried: list[str] = []
        budget = self.config.overlap_tokens
        for sentence in reversed(sentences):
            tokens = self._estimate_tokens(sentence)
            if tokens > budget:
                break
            carried.insert(0, sentence)
            budget -= tokens
        return carried

    @staticmethod
    def _split_sentences(text: str) -> list[str]:
        parts = re.split(r"(?<=[.!?])\s+", text.strip())
        return [p for p in parts if p]

    @staticmethod
    def _estimate_tokens(text: str) -> int:
        # Rough heuristic: one token per four characters.
        return max(1, len(text) // 4)
`

const ingestionVectorStoreSrc = `"""Vector store management against Azure AI Search.

Owns index lifecycle and chunk upserts. Embeddings come from Azure OpenAI;
credentials are resolved through managed identity and Key Vault.
"""

import logging
from dataclasses import dataclass

from azure.identity import DefaultAzureCredential
from azure.search.documents import SearchClient
from azure.search.documents.indexes import SearchIndexClient

logger = logging.getLogger(__name__)

INDEX_NAME = "documents-v1"
VECTOR_DIMENSIONS = 1536


@dataclass
class VectorStoreConfig:
    search_endpoint: str
    embedding_deployment: str = "text-embedding-ada-002"
    batch_size: int = 50


class VectorStoreManager:
    """Upserts chunks and their embeddings into the search index."""

    def __init__(self, config: VectorStoreConfig):
        self.config = config
        credential = DefaultAzureCredential()
        self.index_client = SearchIndexClient(config.search_endpoint, credential)
        self.search_client = SearchClient(config.search_endpoint, INDEX_NAME, credential)

    def ensure_index(self) -> None:
        """Create the index if it does not exist yet."""
        existing = {name for name in self.index_client.list_index_names()}
        if INDEX_NAME in existing:
            return
        self.index_client.create_index(self._index_definition())
        logger.info("created index %s", INDEX_NAME)

    def upsert_chunks(self, chunks, embeddings) -> int:
        """Upload chunk documents in batches; returns the number indexed."""
        documents = [
            {
                "chunk_id": chunk.metadata.chunk_id,
                "document_id": chunk.metadata.document_id,
                "chunk_index": chunk.metadata.chunk_index,
                "content": chunk.content,
                "content_vector": vector,
                "token_count": chunk.metadata.token_count,
            }
            for chunk, vector in zip(chunks, embeddings)
        ]
        indexed = 0
        for start in range(0, len(documents), self.config.batch_size):
            batch = documents[start : start + self.config.batch_size]
            results = self.search_client.merge_or_upload_documents(batch)
            indexed += sum(1 for r in results if r.succeeded)
        logger.info("indexed %d/%d chunks", indexed, len(documents))
        return indexed

    def delete_document(self, document_id: str) -> None:
        """Remove every chunk belonging to a source document."""
        results = self.search_client.search("", filter=f"document_id eq '{document_id}'")
        keys = [{"chunk_id": doc["chunk_id"]} for doc in results]
        if keys:
            self.search_client.delete_documents(keys)

    def _index_definition(self):
        # Field list mirrors docs/data-dictionary.md; keep the two in sync.
        raise NotImplementedError("define fields per docs/data-dictionary.md")
`

const ingestionConfigSrc = `# Ingestion pipeline configuration.
chunking:
  strategy: sentence_based
  max_tokens: 1000
  overlap_tokens: 100

embedding:
  deployment: text-embedding-ada-002
  dimensions: 1536
  batch_size: 50

index:
  name: documents-v1
  refresh_schedule: "0 */6 * * *"

sources:
  documents_container: documents
  processed_container: processed
  dead_letter_container: dead-letter
`
